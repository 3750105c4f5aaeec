package models

import (
	"fmt"
	"strings"
	"time"
)

// ZikhrItem is a named repeatable phrase with a target count.
type ZikhrItem struct {
	Name        string `json:"name"`
	ArabicName  string `json:"arabic_name,omitempty"`
	Description string `json:"description"`
	Count       int    `json:"count"`
}

func (z *ZikhrItem) Validate() error {
	if strings.TrimSpace(z.Name) == "" {
		return fmt.Errorf("zikhr name cannot be empty")
	}
	if z.Count <= 0 {
		return fmt.Errorf("zikhr count must be greater than zero")
	}
	return nil
}

// CompletedZikhr is an immutable log entry for one finished run.
type CompletedZikhr struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Count       int       `json:"count"`
	CompletedAt time.Time `json:"completed_at"`
}

// EsmaUlHusnaItem is one of the names of Allah with its meaning and
// customary repetition count.
type EsmaUlHusnaItem struct {
	Name       string `json:"name"`
	ArabicName string `json:"arabic_name,omitempty"`
	Meaning    string `json:"meaning"`
	Count      int    `json:"count"`
}

// Hadith is a short text with its source attribution.
type Hadith struct {
	Text   string `json:"text"`
	Source string `json:"source"`
}

// SpecialDay describes a religious calendar date and its devotional advice.
type SpecialDay struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Advice      string `json:"advice"`
	Dhikr       string `json:"dhikr,omitempty"`
}

// WidgetSnapshot is the payload pushed to the home-screen widget host.
type WidgetSnapshot struct {
	ZikrName string `json:"zikr_name"`
	Count    int    `json:"count"`
	Target   int    `json:"target"`
}
