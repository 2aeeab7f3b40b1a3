// Package sketch drives the decorative botanical sketch panel: best-effort
// AI image generation, serialized and spaced out to respect upstream rate
// limits, with a file-backed cache so repeated views never re-invoke the
// generator.
package sketch

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/pomeroybees/beeyard/internal/domain/models"
	"github.com/pomeroybees/beeyard/pkg/clients/sketchgen"
)

// ErrDisabled indicates no image generator is configured.
var ErrDisabled = errors.New("sketch generator is not configured")

// minInterval spaces successive upstream calls. This is politeness toward
// the image API's rate limits, not a correctness requirement.
const minInterval = 5 * time.Second

// Service generates and caches botanical sketches and owns the seasonal
// bloom calendar the panel is rendered from.
type Service struct {
	gen    sketchgen.Generator
	cache  *Cache
	flora  []models.Flora
	logger *zap.Logger

	genMu    sync.Mutex
	lastCall time.Time
	now      func() time.Time
	sleep    func(time.Duration)
}

// NewService wires a sketch service. A nil generator disables generation;
// cached sketches are still served.
func NewService(gen sketchgen.Generator, cache *Cache, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		gen:    gen,
		cache:  cache,
		flora:  defaultFlora(),
		logger: logger,
		now:    time.Now,
		sleep:  time.Sleep,
	}
}

// SetClock overrides the clock and sleeper. Intended for tests.
func (s *Service) SetClock(now func() time.Time, sleep func(time.Duration)) {
	s.now = now
	s.sleep = sleep
}

// Sketch returns the image URL for the given sketch id, generating it from
// the subject description on a cache miss. Generation failures are logged
// and yield an empty URL; the caller shows a placeholder instead of an
// error.
func (s *Service) Sketch(ctx context.Context, id, subject string) (string, error) {
	if url, ok := s.cache.Get(id); ok {
		return url, nil
	}
	if s.gen == nil {
		return "", ErrDisabled
	}

	// Serialize upstream calls and keep them spaced apart.
	s.genMu.Lock()
	defer s.genMu.Unlock()

	if url, ok := s.cache.Get(id); ok {
		return url, nil
	}

	if wait := minInterval - s.now().Sub(s.lastCall); wait > 0 {
		s.sleep(wait)
	}
	s.lastCall = s.now()

	url, err := s.gen.GenerateSketch(ctx, subject)
	if err != nil {
		s.logger.Warn("sketch generation failed", zap.String("sketch_id", id), zap.Error(err))
		return "", nil
	}

	s.cache.Put(id, url)
	return url, nil
}

// Flora returns the bloom calendar with any cached sketch URLs attached.
func (s *Service) Flora() []models.Flora {
	out := make([]models.Flora, len(s.flora))
	copy(out, s.flora)
	for i := range out {
		if url, ok := s.cache.Get(out[i].ID); ok {
			out[i].SketchURL = url
		}
	}
	return out
}

// InBloom filters the calendar to plants blooming in the given month.
func (s *Service) InBloom(month time.Month) []models.Flora {
	idx := int(month) - 1
	var out []models.Flora
	for _, plant := range s.Flora() {
		for _, m := range plant.BloomMonths {
			if m == idx {
				out = append(out, plant)
				break
			}
		}
	}
	return out
}

func defaultFlora() []models.Flora {
	return []models.Flora{
		{ID: "f1", CommonName: "Rosemary", ScientificName: "Salvia rosmarinus", Type: models.FloraBoth, BloomMonths: []int{0, 1, 2, 3, 4, 10, 11}, PeakMonths: []int{1, 2, 3}},
		{ID: "f2", CommonName: "Sea Fig", ScientificName: "Carpobrotus chilensis", Type: models.FloraNectar, BloomMonths: []int{3, 4, 5, 6, 7}, PeakMonths: []int{4, 5, 6}},
		{ID: "f3", CommonName: "Monterey Cypress", ScientificName: "Hesperocyparis macrocarpa", Type: models.FloraPollen, BloomMonths: []int{0, 1, 11}, PeakMonths: []int{0, 1}},
		{ID: "f4", CommonName: "Pride of Madeira", ScientificName: "Echium candicans", Type: models.FloraBoth, BloomMonths: []int{2, 3, 4, 5, 6}, PeakMonths: []int{3, 4, 5}},
		{ID: "f5", CommonName: "California Poppy", ScientificName: "Eschscholzia californica", Type: models.FloraPollen, BloomMonths: []int{1, 2, 3, 4, 5, 6, 7, 8}, PeakMonths: []int{2, 3, 4, 5}},
		{ID: "f6", CommonName: "Blue Gum Eucalyptus", ScientificName: "Eucalyptus globulus", Type: models.FloraNectar, BloomMonths: []int{0, 1, 2, 3, 4, 10, 11}, PeakMonths: []int{11, 0, 1, 2}},
	}
}
