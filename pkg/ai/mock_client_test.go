package ai

import (
	"context"
	"strings"
	"testing"
)

func TestMockChatRoutesByTopic(t *testing.T) {
	c := NewMock()
	cases := []struct {
		prompt  string
		image   string
		wantSub string
	}{
		{"my leaves are turning yellow", "", "nitrogen"},
		{"when should I sell at the mandi?", "", "procurement"},
		{"heavy rain expected tomorrow", "", "drainage"},
		{"hello", "", "crop"},
		{"what is this?", "base64data", "photo"},
	}
	for _, tc := range cases {
		got, err := c.Chat(context.Background(), tc.prompt, tc.image)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(strings.ToLower(got), tc.wantSub) {
			t.Errorf("prompt %q: reply %q, want mention of %q", tc.prompt, got, tc.wantSub)
		}
	}
}

func TestMockScan(t *testing.T) {
	rep, err := NewMock().Scan(context.Background(), "base64data")
	if err != nil {
		t.Fatal(err)
	}
	if rep.Diagnosis == "" || rep.Urgency == "" || len(rep.ActionPlan) == 0 {
		t.Errorf("incomplete report: %+v", rep)
	}
}
