package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"digital_analytics_site/content"
	"digital_analytics_site/models"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var ErrInvalidContent = errors.New("invalid site content")

// ParseContent decodes site content YAML, rejecting unknown keys
func ParseContent(data []byte) (*models.SiteContent, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var site models.SiteContent
	if err := dec.Decode(&site); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}
	if err := validateContent(&site); err != nil {
		return nil, err
	}
	return &site, nil
}

func validateContent(site *models.SiteContent) error {
	switch {
	case site.Brand.Name == "":
		return fmt.Errorf("%w: brand.name is required", ErrInvalidContent)
	case site.Hero.Heading.Title == "":
		return fmt.Errorf("%w: hero.heading.title is required", ErrInvalidContent)
	case site.Contact.Heading.Title == "":
		return fmt.Errorf("%w: contact.heading.title is required", ErrInvalidContent)
	}
	for i, item := range site.CaseStudies.Items {
		if item.Title == "" {
			return fmt.Errorf("%w: case_studies.items[%d].title is required", ErrInvalidContent, i)
		}
	}
	return nil
}

// ContentStore serves the current landing page content. With a file path
// set it can reload and watch that file; otherwise it serves the embedded copy.
type ContentStore struct {
	path    string
	logger  *zap.Logger
	current atomic.Pointer[models.SiteContent]
}

func NewContentStore(path string, logger *zap.Logger) (*ContentStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &ContentStore{path: path, logger: logger}

	if path == "" {
		site, err := ParseContent(content.Default)
		if err != nil {
			return nil, fmt.Errorf("embedded content: %w", err)
		}
		s.current.Store(site)
		return s, nil
	}

	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Current returns the live content; callers must not modify it
func (s *ContentStore) Current() *models.SiteContent {
	return s.current.Load()
}

// Reload re-reads the content file. On error the previous content stays live.
func (s *ContentStore) Reload() error {
	if s.path == "" {
		return nil
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("read content %s: %w", s.path, err)
	}
	site, err := ParseContent(data)
	if err != nil {
		return fmt.Errorf("parse content %s: %w", s.path, err)
	}
	s.current.Store(site)
	return nil
}

// Watch reloads the content file whenever it changes until ctx is done.
// The parent directory is watched so editors that replace the file are picked up.
func (s *ContentStore) Watch(ctx context.Context) error {
	if s.path == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create content watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("watch %s: %w", s.path, err)
	}
	target := filepath.Clean(s.path)
	s.logger.Info("watching content file", zap.String("path", target))

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}
			if err := s.Reload(); err != nil {
				s.logger.Warn("content reload failed, keeping previous content", zap.Error(err))
				continue
			}
			s.logger.Info("content reloaded", zap.String("path", target))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("content watcher error", zap.Error(err))
		}
	}
}
