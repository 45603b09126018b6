//go:generate go run go.uber.org/mock/mockgen -source=forwarding_repository.go -destination=../../mocks/mock_forwarding_repository.go -package=mocks
package storage

import (
	"channel-relay/domain"
	"channel-relay/errors"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

type IForwardingRepository interface {
	Load() error
	Set(guildID domain.GuildID, channelID domain.ChannelID) error
	Get(guildID domain.GuildID) (domain.ChannelID, bool)
	All() []domain.ForwardingRule
}

// ForwardingRepository keeps the guild -> destination mapping in memory and
// mirrors it to a flat JSON object on disk. The in-memory map always equals
// the last mapping successfully written to the file.
type ForwardingRepository struct {
	path      string
	log       *slog.Logger
	validator *validator.Validate

	mu    sync.RWMutex
	rules map[domain.GuildID]domain.ChannelID
}

func NewForwardingRepository(path string, log *slog.Logger) *ForwardingRepository {
	return &ForwardingRepository{
		path:      path,
		log:       log,
		validator: validator.New(),
		rules:     make(map[domain.GuildID]domain.ChannelID),
	}
}

// Load replaces the in-memory mapping with the file content.
// A missing file is an empty mapping. On a malformed file the mapping is left
// empty and ErrMalformedConfig is returned.
func (f *ForwardingRepository) Load() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rules = make(map[domain.GuildID]domain.ChannelID)

	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		f.log.Debug("No forwarding config on disk, starting empty", "path", f.path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", errors.ErrMalformedConfig, f.path, err)
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: parse %s: %v", errors.ErrMalformedConfig, f.path, err)
	}
	for guildID, channelID := range raw {
		f.rules[domain.GuildID(guildID)] = domain.ChannelID(channelID)
	}
	f.log.Info("Forwarding config loaded", "path", f.path, "rules", len(f.rules))
	return nil
}

// Set stores the rule and rewrites the whole file before returning.
// If the write fails the previous entry is restored.
func (f *ForwardingRepository) Set(guildID domain.GuildID, channelID domain.ChannelID) error {
	rule := domain.ForwardingRule{GuildID: guildID, ChannelID: channelID}
	if err := f.validator.Struct(rule); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidRule, err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	previous, existed := f.rules[guildID]
	f.rules[guildID] = channelID
	if err := f.persist(); err != nil {
		if existed {
			f.rules[guildID] = previous
		} else {
			delete(f.rules, guildID)
		}
		return fmt.Errorf("failed to persist forwarding config: %w", err)
	}
	return nil
}

func (f *ForwardingRepository) Get(guildID domain.GuildID) (domain.ChannelID, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	channelID, ok := f.rules[guildID]
	return channelID, ok
}

// All returns a snapshot of every rule ordered by guild id.
func (f *ForwardingRepository) All() []domain.ForwardingRule {
	f.mu.RLock()
	defer f.mu.RUnlock()
	rules := lo.MapToSlice(f.rules, func(guildID domain.GuildID, channelID domain.ChannelID) domain.ForwardingRule {
		return domain.ForwardingRule{GuildID: guildID, ChannelID: channelID}
	})
	slices.SortFunc(rules, func(a, b domain.ForwardingRule) int {
		return strings.Compare(string(a.GuildID), string(b.GuildID))
	})
	return rules
}

// persist must be called with mu held.
// The file is replaced by rename so readers never see a partial write.
func (f *ForwardingRepository) persist() error {
	raw := make(map[string]string, len(f.rules))
	for guildID, channelID := range f.rules {
		raw[string(guildID)] = string(channelID)
	}
	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), f.path)
}
