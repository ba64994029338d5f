package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/envelope"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/pdf"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/session"
	"github.com/jonathan/resume-builder/internal/storage"
)

// loadConfig resolves the configuration from --config, the environment and
// the defaults. --verbose always wins over the file.
func loadConfig() (config.Config, error) {
	cfg, err := config.Resolve(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if verbose {
		cfg.Verbose = true
	}
	return cfg, nil
}

// openStore opens the file store that holds the autosaved session.
func openStore(cfg config.Config) (*storage.FileStore, error) {
	store, err := storage.NewFileStore(cfg.StoreDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}
	return store, nil
}

// loadSession builds a session from an envelope file when input is set,
// otherwise from the stored session record.
func loadSession(ctx context.Context, cfg config.Config, input string) (*session.Session, error) {
	sess := session.New()

	if input != "" {
		data, err := os.ReadFile(input)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", input, err)
		}
		warnSchema(data)
		doc, tpl, theme := envelope.Deserialize(data)
		sess.Restore(doc, tpl, theme)
		return sess, nil
	}

	store, err := openStore(cfg)
	if err != nil {
		return nil, err
	}
	if err := storage.Load(ctx, store, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// warnSchema logs schema problems in an envelope without failing.
func warnSchema(data []byte) {
	err := schemas.ValidateEnvelope(data)
	if err == nil {
		return
	}
	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		for _, fe := range validationErr.Errors {
			log.Printf("[import] warning: %s: %s", fe.Field, fe.Message)
		}
		return
	}
	log.Printf("[import] schema check skipped: %v", err)
}

// newExporter builds an exporter for the configured PDF engine.
func newExporter(cfg config.Config) (*export.Exporter, error) {
	engine, err := pdf.NewEngine(cfg.PDFEngine, cfg.ChromePath, time.Duration(cfg.BrowserTimeout))
	if err != nil {
		return nil, err
	}
	if b, ok := engine.(*pdf.BrowserRenderer); ok {
		b.Verbose = cfg.Verbose
	}
	return export.New(engine), nil
}
