package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/napolitain/microciv/internal/game"
)

const systemPrompt = `You are playing a turn-based strategy game. Each turn you may issue commands:
  end                    finish your turn
  build <name>           queue a building
  hire <name>            recruit a unit (needs a completed producer building)
  attack <name> [count]  send units against another city
Answer every request with exactly one command or choice, nothing else.`

// LLM is a Decider backed by an OpenAI-compatible chat-completions endpoint.
// It keeps one running conversation; the bridge worker is its only caller, so
// the message history needs no locking.
type LLM struct {
	baseURL  string
	apiKey   string
	model    string
	client   *http.Client
	messages []chatMessage
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// NewLLM creates a client for the given endpoint. Empty arguments fall back
// to the OPENAI_BASE_URL and OPENAI_KEY environment variables.
func NewLLM(baseURL, apiKey, model string) *LLM {
	if baseURL == "" {
		baseURL = os.Getenv("OPENAI_BASE_URL")
	}
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_KEY")
	}
	return &LLM{
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiKey:   apiKey,
		model:    model,
		client:   &http.Client{},
		messages: []chatMessage{{Role: "system", Content: systemPrompt}},
	}
}

// DecideAction asks for the next command for civIndex.
func (l *LLM) DecideAction(ctx context.Context, view game.Snapshot, civIndex int) (string, error) {
	prompt := summarize(view, civIndex) + "\nWhat is your next command?"
	reply, err := l.chat(ctx, prompt)
	if err != nil {
		return "", err
	}
	return firstLine(reply), nil
}

// DecidePopupInput answers an open popup, preferring a numeric choice.
func (l *LLM) DecidePopupInput(ctx context.Context, view game.Snapshot, civIndex int, popup game.PopupView) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "A dialog is open: %s\n%s\n", popup.Title, popup.Prompt)
	for i, c := range popup.Choices {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, c)
	}
	if len(popup.Choices) > 0 {
		b.WriteString("Answer with the number of your choice.")
	} else {
		b.WriteString("Answer with a short text, or nothing.")
	}
	reply, err := l.chat(ctx, b.String())
	if err != nil {
		return "", err
	}
	return firstLine(reply), nil
}

// chat appends the prompt to the conversation, posts it, and appends the
// assistant reply so context accumulates across the game.
func (l *LLM) chat(ctx context.Context, prompt string) (string, error) {
	l.messages = append(l.messages, chatMessage{Role: "user", Content: prompt})

	body, err := json.Marshal(chatRequest{Model: l.model, Messages: l.messages})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if l.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+l.apiKey)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("decision service unreachable: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("decision service returned %s", resp.Status)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("malformed decision response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("decision response has no choices")
	}

	answer := parsed.Choices[0].Message
	l.messages = append(l.messages, answer)
	return answer.Content, nil
}

// summarize renders the snapshot as prompt text.
func summarize(view game.Snapshot, civIndex int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Turn %d. You are %s.\n", view.Turn, view.Players[civIndex].Name)
	for i, p := range view.Players {
		status := "alive"
		if !p.Alive {
			status = "defeated"
		}
		marker := " "
		if i == civIndex {
			marker = "*"
		}
		fmt.Fprintf(&b, "%s %s: %d resources, %d buildings, %d units (%s)\n",
			marker, p.Name, p.Resources, p.Buildings, p.Units, status)
	}
	fmt.Fprintf(&b, "Buildings available: %s\n", strings.Join(view.Buildings, ", "))
	fmt.Fprintf(&b, "Units available: %s\n", strings.Join(view.Units, ", "))
	return b.String()
}

// firstLine trims the reply to a single lowercase command line.
func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.ToLower(strings.TrimSpace(s))
}
