// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/danielhkuo/invoice-entry/form"
	"github.com/danielhkuo/invoice-entry/storage"
)

// StorageKey holds the draft as JSON.
const StorageKey = "invoiceFormData"

// ErrClosed is returned by SaveNow after Close.
var ErrClosed = errors.New("draft manager is closed")

// DefaultDelay is the quiet period before a scheduled save is written.
const DefaultDelay = time.Second

// LoadResult says why Load did or did not return a draft.
type LoadResult int

const (
	Loaded LoadResult = iota
	NoDraft
	Corrupt
	ReadFailed
)

func (r LoadResult) String() string {
	switch r {
	case Loaded:
		return "loaded"
	case NoDraft:
		return "no draft"
	case Corrupt:
		return "corrupt"
	case ReadFailed:
		return "read failed"
	}
	return fmt.Sprintf("LoadResult(%d)", int(r))
}

// pending is the single slot for a scheduled write. gen identifies the
// timer that owns it.
type pending struct {
	timer  *time.Timer
	values form.Values
	gen    uint64
}

// Manager writes form values to storage after a quiet period. At most one
// write is pending at any time; scheduling again replaces it.
type Manager struct {
	store storage.Store
	delay time.Duration
	log   zerolog.Logger

	mu      sync.Mutex
	slot    *pending
	gen     uint64
	closed  bool
	lastErr error
	saves   int
}

// NewManager returns a Manager. A delay of zero uses DefaultDelay.
func NewManager(store storage.Store, delay time.Duration, log zerolog.Logger) *Manager {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Manager{
		store: store,
		delay: delay,
		log:   log.With().Str("component", "draft").Logger(),
	}
}

// Load reads the stored draft. Anything other than Loaded means the caller
// starts from empty values; the reason is logged, never returned as an error.
func (m *Manager) Load(ctx context.Context) (form.Values, LoadResult) {
	raw, ok, err := m.store.GetItem(ctx, StorageKey)
	if err != nil {
		m.log.Error().Err(err).Msg("failed to read draft")
		return form.Values{}, ReadFailed
	}
	if !ok {
		m.log.Debug().Msg("no saved draft")
		return form.Values{}, NoDraft
	}

	var v form.Values
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		m.log.Warn().Err(err).Int("bytes", len(raw)).Msg("saved draft is corrupt, starting empty")
		return form.Values{}, Corrupt
	}

	m.log.Debug().Msg("draft loaded")
	return v, Loaded
}

// ScheduleSave arranges for v to be written once no other call has been
// made for the configured delay. Only the latest values are written.
// After Close it does nothing.
func (m *Manager) ScheduleSave(v form.Values) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}

	if m.slot != nil {
		m.slot.timer.Stop()
	}

	m.gen++
	gen := m.gen
	m.slot = &pending{values: v, gen: gen}
	m.slot.timer = time.AfterFunc(m.delay, func() { m.fire(gen) })
}

// fire writes the slot if it still belongs to the timer identified by gen.
// A timer that lost a race with ScheduleSave, SaveNow or Close finds a
// newer generation or an empty slot and does nothing.
func (m *Manager) fire(gen uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.slot == nil || m.slot.gen != gen {
		return
	}
	v := m.slot.values
	m.slot = nil

	m.write(v)
}

// SaveNow writes v immediately and drops any pending write, so an older
// snapshot can never land after it. After Close it returns ErrClosed.
func (m *Manager) SaveNow(v form.Values) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	m.cancelLocked()
	return m.write(v)
}

// write must be called with mu held.
func (m *Manager) write(v form.Values) error {
	raw, err := json.Marshal(v)
	if err != nil {
		m.lastErr = err
		return err
	}

	if err := m.store.SetItem(context.Background(), StorageKey, string(raw)); err != nil {
		m.lastErr = err
		m.log.Error().Err(err).Msg("failed to save draft")
		return fmt.Errorf("failed to save draft: %w", err)
	}

	m.lastErr = nil
	m.saves++
	m.log.Debug().Int("saves", m.saves).Msg("draft saved")
	return nil
}

func (m *Manager) cancelLocked() {
	if m.slot != nil {
		m.slot.timer.Stop()
		m.slot = nil
	}
}

// Pending reports whether a write is scheduled.
func (m *Manager) Pending() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slot != nil
}

// Err returns the error of the most recent write, or nil if it succeeded.
func (m *Manager) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastErr
}

// Close cancels any pending write. Nothing is written after Close returns.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.slot != nil {
		m.log.Debug().Msg("discarding pending draft save")
	}
	m.cancelLocked()
	m.closed = true
}
