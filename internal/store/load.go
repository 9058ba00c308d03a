package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"agtechsummit/internal/domain"
)

// migrations[v] upgrades a state decoded from a version v snapshot to version v+1.
var migrations = []func(st *State){
	migrateV0,
}

func (s *Store) load(ctx context.Context) {
	if s.backend == nil {
		return
	}
	raw, err := s.backend.Load(ctx, StorageKey)
	if errors.Is(err, domain.ErrNotFound) {
		s.logger.InfoContext(ctx, "no stored state, saving seed", "key", StorageKey)
		_ = s.Flush(ctx)
		return
	}
	if err != nil {
		// The stored blob may still be there. Never save over it from this process.
		s.logger.ErrorContext(ctx, "load state failed, serving seed without saving", "key", StorageKey, "err", err)
		s.loadErr = fmt.Errorf("load %s: %w", StorageKey, err)
		s.setDegraded(true)
		return
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		s.logger.WarnContext(ctx, "stored state is not a JSON object, replacing with seed", "key", StorageKey, "err", err)
		_ = s.Flush(ctx)
		return
	}

	version := 0
	if v, ok := fields["schemaVersion"]; ok {
		if err := json.Unmarshal(v, &version); err != nil {
			s.logger.WarnContext(ctx, "ignoring unreadable schemaVersion", "err", err)
			version = 0
		}
	}

	s.mu.Lock()
	st := s.state
	mergeCollection(ctx, s.logger, fields, "paperSubmissions", &st.PaperSubmissions)
	mergeCollection(ctx, s.logger, fields, "enquiries", &st.Enquiries)
	mergeCollection(ctx, s.logger, fields, "speakers", &st.Speakers)
	mergeCollection(ctx, s.logger, fields, "leadershipApplications", &st.LeadershipApplications)
	mergeCollection(ctx, s.logger, fields, "speakerApplications", &st.SpeakerApplications)
	mergeCollection(ctx, s.logger, fields, "committeeMembers", &st.CommitteeMembers)
	mergeCollection(ctx, s.logger, fields, "sessions", &st.Sessions)
	mergeCollection(ctx, s.logger, fields, "registrations", &st.Registrations)
	mergeCollection(ctx, s.logger, fields, "exitFeedback", &st.ExitFeedback)
	var tiers []domain.PassTier
	if mergeCollection(ctx, s.logger, fields, "passTiers", &tiers) && len(tiers) > 0 {
		st.PassTiers = tiers
	}

	migrated := false
	for v := version; v >= 0 && v < len(migrations); v++ {
		migrations[v](st)
		migrated = true
	}
	st.SchemaVersion = CurrentSchemaVersion
	uncategorised := 0
	for _, m := range st.CommitteeMembers {
		if m.Category == "" {
			uncategorised++
		}
	}
	s.mu.Unlock()

	if uncategorised > 0 {
		s.logger.WarnContext(ctx, "committee members without category", "count", uncategorised)
	}
	if migrated {
		s.logger.InfoContext(ctx, "migrated stored state", "from", version, "to", CurrentSchemaVersion)
		s.mu.Lock()
		s.rev++
		s.mu.Unlock()
		_ = s.Flush(ctx)
	}
}

// mergeCollection replaces *dst with the named field when it is present and is a JSON array.
// Records are decoded one by one so a bad record never costs the rest of the collection;
// see decodeRecord. It reports whether *dst was replaced.
func mergeCollection[T any](ctx context.Context, logger *slog.Logger, fields map[string]json.RawMessage, name string, dst *[]T) bool {
	raw, ok := fields[name]
	if !ok {
		return false
	}
	var elems []json.RawMessage
	if !bytes.HasPrefix(bytes.TrimSpace(raw), []byte("[")) || json.Unmarshal(raw, &elems) != nil {
		logger.WarnContext(ctx, "ignoring stored field that is not an array", "field", name)
		return false
	}
	items := make([]T, 0, len(elems))
	for i, elem := range elems {
		item, dropped, err := decodeRecord[T](elem)
		if err != nil {
			logger.WarnContext(ctx, "skipping stored record that is not an object", "field", name, "index", i, "err", err)
			continue
		}
		if len(dropped) > 0 {
			logger.WarnContext(ctx, "stored record has unreadable fields", "field", name, "index", i, "fields", dropped)
		}
		items = append(items, item)
	}
	*dst = items
	return true
}

// decodeRecord decodes one stored record. When the record as a whole does not decode, it is
// decoded field by field and the names of the fields that could not be read are returned;
// those fields keep their zero value. Only a record that is not a JSON object is an error.
func decodeRecord[T any](raw json.RawMessage) (T, []string, error) {
	var item T
	if err := json.Unmarshal(raw, &item); err == nil {
		return item, nil, nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return item, nil, errors.New("record is not a JSON object")
	}
	var dropped []string
	for name, value := range fields {
		one, err := json.Marshal(map[string]json.RawMessage{name: value})
		if err != nil {
			dropped = append(dropped, name)
			continue
		}
		// Decode into a scratch copy so a half-applied field never leaks into item.
		next := item
		if err := json.Unmarshal(one, &next); err != nil {
			dropped = append(dropped, name)
			continue
		}
		item = next
	}
	sort.Strings(dropped)
	return item, dropped, nil
}

// migrateV0 upgrades snapshots written before schemaVersion existed.
func migrateV0(st *State) {
	for i := range st.CommitteeMembers {
		m := &st.CommitteeMembers[i]
		if m.Category != "" {
			continue
		}
		if strings.Contains(strings.ToLower(m.Role), "advisory") {
			m.Category = domain.CommitteeAdvisory
		} else {
			m.Category = domain.CommitteeOrganizing
		}
	}
	for i := range st.LeadershipApplications {
		if st.LeadershipApplications[i].Track == "" {
			st.LeadershipApplications[i].Track = domain.TrackSpeaker
		}
	}
	if len(st.LeadershipApplications) == 0 && len(st.SpeakerApplications) > 0 {
		apps := make([]domain.LeadershipApplication, 0, len(st.SpeakerApplications))
		for _, a := range st.SpeakerApplications {
			apps = append(apps, domain.LeadershipApplication{
				ID:           a.ID,
				Track:        domain.TrackSpeaker,
				FullName:     a.FullName,
				Email:        a.Email,
				Title:        a.Title,
				Organization: a.Organization,
				Location:     a.Location,
				SpeakerType:  a.Type,
				Bio:          a.Bio,
				ProfileImage: a.ImageFile,
				SubmittedAt:  a.SubmittedAt,
				Status:       a.Status,
			})
		}
		st.LeadershipApplications = apps
	}
}
