package services

import (
	"context"
	"log"
	"time"

	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/models"
	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/repositories"
	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/storage"
	"golang.org/x/sync/errgroup"
)

// sweepMinAge keeps the sweep from flagging uploads whose row is still being
// written by an in-flight request.
const sweepMinAge = 24 * time.Hour

// SweepService reports uploads in the content root that no File row or wiki
// icon references anymore. Report-only: removal stays an operator decision.
type SweepService struct {
	files repositories.FileRepository
	wiki  repositories.WikiRepository
	store *storage.Store
}

func NewSweepService(files repositories.FileRepository, wiki repositories.WikiRepository, store *storage.Store) *SweepService {
	return &SweepService{files: files, wiki: wiki, store: store}
}

func (s *SweepService) SweepOrphans(ctx context.Context) error {
	var (
		paths    []string
		articles []models.WikiArticle
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		paths, err = s.files.ListFilePaths(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		articles, err = s.wiki.GetArticles(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	referenced := make(map[string]bool, len(paths))
	for _, p := range paths {
		referenced[p] = true
	}
	for _, a := range articles {
		if a.Icon.Kind == models.IconImage {
			referenced[a.Icon.Path] = true
		}
	}

	stored, err := s.store.List()
	if err != nil {
		return err
	}

	orphans := 0
	for _, f := range stored {
		if referenced[f.Path] || time.Since(f.ModTime) < sweepMinAge {
			continue
		}
		orphans++
		log.Printf("[WARN] orphaned upload: %s (last modified %s)", f.Path, f.ModTime.Format(time.RFC3339))
	}
	log.Printf("[INFO] upload sweep done: %d stored, %d orphaned", len(stored), orphans)
	return nil
}
