package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"jamjam-resort-api/seed"
	"jamjam-resort-api/store"
)

// Initialize provisions every collection and fills the ones it just created with the
// default catalogue. Collections that already existed are not reseeded.
func (s *Services) Initialize(ctx context.Context, defaults *seed.Defaults) ([]store.Collection, error) {
	created, err := s.Store.Provision(ctx, store.All()...)
	if err != nil {
		return created, err
	}
	if defaults == nil {
		return created, nil
	}
	for _, c := range created {
		docs := defaults.For(c)
		repo, ok := s.ForCollection(c)
		if len(docs) == 0 || !ok {
			continue
		}
		if _, err := repo.Seed(ctx, docs, true); err != nil {
			return created, err
		}
		s.log.WithFields(logrus.Fields{"collection": c.Name, "records": len(docs)}).Info("🌱 seeded defaults")
	}
	return created, nil
}
