package game

import "errors"

// Recoverable validation errors. These never abort the simulation: the action
// layer turns them into popup text and leaves state untouched. Messages are
// written for direct display.
var (
	ErrUnknownBuilding       = errors.New("unknown building")
	ErrUnknownUnit           = errors.New("unknown unit")
	ErrUnknownTarget         = errors.New("unknown target")
	ErrAlreadyInProgress     = errors.New("an order of this kind is already in progress")
	ErrNoSlot                = errors.New("no available slots")
	ErrInsufficientResources = errors.New("not enough resources")
	ErrNoProducer            = errors.New("no completed building can produce this unit")
	ErrSelfAttack            = errors.New("cannot attack yourself")
	ErrCivDead               = errors.New("civilization is already defeated")
	ErrGameOver              = errors.New("the game is over")
	ErrNoUnitsAvailable      = errors.New("no units available to send")
	ErrNoPath                = errors.New("no path to target")
	ErrInvalidAmount         = errors.New("invalid amount")
)
