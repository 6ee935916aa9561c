// Package notify delivers fire-and-forget user notifications.
package notify

import (
	"context"
	"time"
)

type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

type Notification struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Variant     Variant   `json:"variant"`
	CreatedAt   time.Time `json:"created_at"`
}

// Notifier never reports failure to the caller; sinks log their own errors.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// Info builds a default notification.
func Info(title, description string) Notification {
	return Notification{Title: title, Description: description, Variant: VariantDefault}
}

// Alert builds a destructive notification.
func Alert(title, description string) Notification {
	return Notification{Title: title, Description: description, Variant: VariantDestructive}
}

type multi []Notifier

// Multi fans a notification out to every sink in order. Nil sinks are skipped.
func Multi(sinks ...Notifier) Notifier {
	m := make(multi, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			m = append(m, s)
		}
	}
	return m
}

func (m multi) Notify(ctx context.Context, n Notification) {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	for _, s := range m {
		s.Notify(ctx, n)
	}
}

// Nop discards notifications.
type Nop struct{}

func (Nop) Notify(context.Context, Notification) {}
