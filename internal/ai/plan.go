package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"studyplan-backend/internal/tasks"
)

// planSchema constrains the model output to an array of draft tasks.
var planSchema = map[string]any{
	"type": "ARRAY",
	"items": map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "STRING",
				"description": "Tiêu đề của công việc học tập.",
			},
			"description": map[string]any{
				"type":        "STRING",
				"description": "Một mô tả ngắn gọn trong một câu về công việc.",
			},
			"priority": map[string]any{
				"type":        "STRING",
				"description": "Mức độ ưu tiên được đề xuất cho công việc. Phải là một trong các giá trị: 'High', 'Medium', 'Low'.",
				"enum":        []string{"High", "Medium", "Low"},
			},
		},
		"required": []string{"title", "description", "priority"},
	},
}

func planPrompt(topic string) string {
	return fmt.Sprintf(
		`Tạo một kế hoạch học tập chi tiết cho chủ đề "%s". Kế hoạch nên là một danh sách các công việc. Đối với mỗi công việc, hãy cung cấp một tiêu đề ngắn gọn, một mô tả ngắn gọn trong một câu và một mức độ ưu tiên được đề xuất (sử dụng một trong các giá trị: 'High', 'Medium', 'Low').`,
		topic,
	)
}

// GeneratePlan turns a study topic into draft tasks. Without a
// credential it degrades to the fixed offline template; any generation
// or validation failure degrades to an empty plan. It never errors out
// to the caller.
func (c *GeminiClient) GeneratePlan(ctx context.Context, topic string) []tasks.Draft {
	if !c.Configured() {
		log.Println("[WARN] GEMINI_API_KEY is not set, using fallback plan")
		return FallbackPlan(topic)
	}

	text, err := c.GenerateContent(ctx, planPrompt(topic), planSchema)
	if err != nil {
		log.Printf("[WARN] plan generation failed for topic %q: %v", topic, err)
		return nil
	}

	drafts, err := ParsePlan(text)
	if err != nil {
		log.Printf("[WARN] discarding malformed plan for topic %q: %v", topic, err)
		return nil
	}
	return drafts
}

// ParsePlan validates the model's JSON. The whole plan is rejected if
// any item is incomplete or carries an unknown priority; a partial
// plan never reaches the task model.
func ParsePlan(text string) ([]tasks.Draft, error) {
	var items []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Priority    string `json:"priority"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &items); err != nil {
		return nil, fmt.Errorf("not a valid json array: %w", err)
	}

	drafts := make([]tasks.Draft, 0, len(items))
	for i, item := range items {
		if strings.TrimSpace(item.Title) == "" || strings.TrimSpace(item.Description) == "" {
			return nil, fmt.Errorf("item %d: title and description required", i)
		}
		p, err := tasks.ParsePriority(item.Priority)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		drafts = append(drafts, tasks.Draft{
			Title:       item.Title,
			Description: item.Description,
			Priority:    p,
		})
	}
	return drafts, nil
}

// FallbackPlan is the deterministic offline template: three tasks
// seeded with the topic, high to low priority.
func FallbackPlan(topic string) []tasks.Draft {
	return []tasks.Draft{
		{
			Title:       fmt.Sprintf("Học những điều cơ bản về %s", topic),
			Description: "Hiểu các khái niệm cơ bản.",
			Priority:    tasks.PriorityHigh,
		},
		{
			Title:       fmt.Sprintf("Thực hành %s", topic),
			Description: "Làm các bài tập và dự án đơn giản.",
			Priority:    tasks.PriorityMedium,
		},
		{
			Title:       fmt.Sprintf("Nâng cao %s", topic),
			Description: "Đi sâu vào các chủ đề phức tạp hơn và xây dựng một dự án lớn hơn.",
			Priority:    tasks.PriorityLow,
		},
	}
}
