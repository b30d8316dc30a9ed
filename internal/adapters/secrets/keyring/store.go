// Package keyring stores named API keys in a single TOML file under the
// bot's config directory. It is deliberately plain: one host, one file,
// 0600. Anything fancier belongs behind the same ports.SecretStore.
package keyring

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/arebot/horasbot/internal/domain"
	"github.com/arebot/horasbot/internal/ports"
)

const (
	keyringFileMode = 0o600
	keyringDirMode  = 0o700
	tempFilePattern = ".keyring-*.toml.tmp"
)

type fileSchema struct {
	Secrets map[string]string `toml:"secrets"`
}

type Store struct {
	path string
	mu   sync.RWMutex
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	key, err := normalizeKey(key)
	if err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := s.readSchema()
	if err != nil {
		return "", err
	}

	value, ok := file.Secrets[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrSecretNotFound, key)
	}

	return value, nil
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key, err := normalizeKey(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.readSchema()
	if err != nil {
		return err
	}
	if file.Secrets == nil {
		file.Secrets = map[string]string{}
	}
	file.Secrets[key] = value

	return s.writeSchema(file)
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key, err := normalizeKey(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.readSchema()
	if err != nil {
		return err
	}
	if _, ok := file.Secrets[key]; !ok {
		return nil
	}
	delete(file.Secrets, key)

	return s.writeSchema(file)
}

func normalizeKey(key string) (string, error) {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return "", errors.New("secret key is empty")
	}
	return trimmed, nil
}

func (s *Store) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read keyring file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode keyring file: %w", err)
	}

	return file, nil
}

func (s *Store) writeSchema(file fileSchema) error {
	if err := os.MkdirAll(filepath.Dir(s.path), keyringDirMode); err != nil {
		return fmt.Errorf("create keyring directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode keyring file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(s.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp keyring file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp keyring file: %w", err)
	}
	if err := tempFile.Chmod(keyringFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp keyring file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp keyring file: %w", err)
	}

	if err := os.Rename(tempName, s.path); err != nil {
		return fmt.Errorf("replace keyring file: %w", err)
	}
	cleanup = false

	return nil
}
