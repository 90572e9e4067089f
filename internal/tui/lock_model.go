package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
)

// LockModel guards layout mutations behind an optional passphrase.
type LockModel struct {
	Locked          bool
	Unlocking       bool
	Message         string
	PassphraseHash  string
	PassphraseInput textinput.Model
	Attempts        int
	LockUntil       time.Time
}

func NewLockModel(hash string, input textinput.Model) LockModel {
	return LockModel{
		PassphraseHash:  hash,
		PassphraseInput: input,
		Locked:          hash != "",
	}
}

// RateLimited reports whether further passphrase attempts must wait.
func (l *LockModel) RateLimited(now time.Time) (bool, time.Duration) {
	if now.Before(l.LockUntil) {
		return true, l.LockUntil.Sub(now)
	}
	return false, 0
}

func (l *LockModel) RecordFailure(now time.Time) {
	l.Attempts++
	if l.Attempts >= 3 {
		l.LockUntil = now.Add(30 * time.Second)
		l.Attempts = 0
	}
}

func (l *LockModel) ClearFailures() {
	l.Attempts = 0
	l.LockUntil = time.Time{}
}
