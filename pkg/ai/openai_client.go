package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"kisan/entities"
)

const systemPrompt = `You are 'Kisan Sahayak', a wise and practical agricultural expert for Indian farmers. Speak in simple terms. Provide actionable advice for the current season. If the user provides a crop image, diagnose potential pests or diseases. Use local Indian context (Mandis, bio-pesticides, Government schemes).`

type openAI struct {
	endpoint string
	key      string
	model    string
	httpc    *http.Client
}

func NewOpenAI(endpoint, key, model string) Client {
	return &openAI{
		endpoint: endpoint,
		key:      key,
		model:    model,
		httpc:    &http.Client{Timeout: 25 * time.Second},
	}
}

func (c *openAI) Chat(ctx context.Context, prompt, imageBase64 string) (string, error) {
	user := prompt
	if imageBase64 != "" {
		// endpoint gets text only; describe that an image existed
		user = prompt + "\n\n(The farmer attached a crop photo.)"
	}
	content, err := c.complete(ctx, systemPrompt, user)
	if err != nil {
		return "", err
	}
	return content, nil
}

func (c *openAI) Scan(ctx context.Context, imageBase64 string) (entities.ScanReport, error) {
	user := "Analyze this agricultural photo as an expert agronomist. Reply ONLY valid JSON with keys diagnosis, confidence, urgency (LOW|MEDIUM|HIGH|CRITICAL), action_plan (array of strings), prevention."
	if imageBase64 != "" {
		user += "\n\nImage (base64 JPEG): " + imageBase64
	}
	content, err := c.complete(ctx, systemPrompt, user)
	if err != nil {
		return entities.ScanReport{}, err
	}
	var report entities.ScanReport
	if err := json.Unmarshal([]byte(content), &report); err != nil {
		return entities.ScanReport{}, fmt.Errorf("parse scan report: %w / raw: %s", err, content)
	}
	return report, nil
}

func (c *openAI) complete(ctx context.Context, system, user string) (string, error) {
	reqBody := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": system},
			{"role": "user", "content": user},
		},
		"temperature": 0.2,
	}
	b, _ := json.Marshal(reqBody)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimRight(c.endpoint, "/")+"/v1/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("no choices")
	}
	content := strings.TrimSpace(out.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("empty completion")
	}
	return content, nil
}
