package services

import (
	"context"
	"sort"
	"sync"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// IntentJournal records storage keys the uploader is about to write. Uploads
// and row writes are not transactional, so an aborted submission can leave
// objects behind; the journal is what makes those orphans findable.
type IntentJournal struct {
	mu   sync.Mutex
	keys map[string]struct{}
}

func NewIntentJournal() *IntentJournal {
	return &IntentJournal{keys: make(map[string]struct{})}
}

func (j *IntentJournal) Record(key string) {
	j.mu.Lock()
	j.keys[key] = struct{}{}
	j.mu.Unlock()
}

func (j *IntentJournal) Forget(key string) {
	j.mu.Lock()
	delete(j.keys, key)
	j.mu.Unlock()
}

// Keys returns the journaled keys in stable order.
func (j *IntentJournal) Keys() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	keys := make([]string, 0, len(j.keys))
	for key := range j.keys {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Reconciler sweeps journaled storage keys that no surviving row references:
// leftovers from aborted submissions and from best-effort delete cleanup that
// failed. Removals fan out concurrently but bounded; a key whose removal
// fails stays journaled for the next sweep.
type Reconciler struct {
	storage ObjectStorage
	journal *IntentJournal
	db      database.Database
	logger  zerolog.Logger
}

func NewReconciler(storage ObjectStorage, journal *IntentJournal, db database.Database) *Reconciler {
	return &Reconciler{
		storage: storage,
		journal: journal,
		db:      db,
		logger:  log.With().Str("serviceName", "reconciler").Logger(),
	}
}

// Sweep removes every journaled object that no live row references and
// returns the keys it removed. Journaled keys a live row does reference are
// committed uploads, so their journal entries are cleared instead.
func (r *Reconciler) Sweep(ctx context.Context) ([]string, error) {
	referenced, err := r.referencedURLs(ctx)
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	removed := []string{}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(4)
	for _, key := range r.journal.Keys() {
		if _, ok := referenced[r.storage.PublicURL(key)]; ok {
			r.journal.Forget(key)
			continue
		}
		group.Go(func() error {
			if err := r.storage.Remove(groupCtx, key); err != nil {
				r.logger.Error().Err(err).Str("key", key).Msg("Failed to remove orphaned object")
				return nil
			}
			r.journal.Forget(key)
			mu.Lock()
			removed = append(removed, key)
			mu.Unlock()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return removed, err
	}

	sort.Strings(removed)
	r.logger.Info().Int("removed", len(removed)).Msg("Storage sweep finished")
	return removed, nil
}

// referencedURLs collects every image URL a live row points at.
func (r *Reconciler) referencedURLs(ctx context.Context) (map[string]struct{}, error) {
	referenced := make(map[string]struct{})

	projects, err := r.db.ProjectRepo().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, project := range projects {
		referenced[project.CoverImage] = struct{}{}
		for _, imageURL := range project.Images {
			referenced[imageURL] = struct{}{}
		}
	}

	certificates, err := r.db.CertificateRepo().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, certificate := range certificates {
		referenced[certificate.Image] = struct{}{}
	}

	info, err := r.db.ContactInfoRepo().Get(ctx)
	if err == nil && info.Photo != "" {
		referenced[info.Photo] = struct{}{}
	}

	return referenced, nil
}
