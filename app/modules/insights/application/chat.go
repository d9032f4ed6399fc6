package insightsservice

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Chat answers a free-form question with the user's rounds serialized as
// context. String in, string out; no conversation state is kept.
func (s *InsightsService) Chat(ctx context.Context, userID int64, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", fmt.Errorf("question is empty")
	}

	rounds, err := s.rounds.ListRounds(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("chat: %w", err)
	}

	history, err := json.Marshal(rounds)
	if err != nil {
		return "", fmt.Errorf("chat: encode rounds: %w", err)
	}

	var b strings.Builder
	b.WriteString("You are a golf coach. Answer the player's question using their round history below. Be specific and concise; if the history does not contain the answer, say so.\n\nRound history (JSON, most recent first):\n")
	b.Write(history)
	b.WriteString("\n\nQuestion: ")
	b.WriteString(question)

	answer, err := s.client.GenerateText(ctx, s.chatModel, b.String())
	if err != nil {
		return "", s.mapModelError(ctx, err)
	}
	return answer, nil
}
