// Package store persists products, users, and orders as line-oriented text
// records, one file per collection. Saves overwrite the whole file; loads
// skip blank and malformed lines and treat a missing file as an empty
// collection. Single-process use only: there is no locking or atomic rename.
package store

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ntshop/internal/domain"
	applog "ntshop/internal/log"
)

type Store struct {
	usersPath    string
	productsPath string
	ordersPath   string
}

func New(dir, usersFile, productsFile, ordersFile string) *Store {
	return &Store{
		usersPath:    filepath.Join(dir, usersFile),
		productsPath: filepath.Join(dir, productsFile),
		ordersPath:   filepath.Join(dir, ordersFile),
	}
}

// overwrite replaces the file with the given records. Callers encode every
// record before this runs. A crash mid-write can still truncate the file;
// there is no atomic rename.
func overwrite(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open %s for writing: %w", path, err)
	}
	w := bufio.NewWriter(f)
	for _, ln := range lines {
		fmt.Fprintln(w, ln)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// readLines returns the file's lines. A missing file is an empty collection,
// not an error.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		out = append(out, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return out, nil
}

func (s *Store) SaveProducts(ps []*domain.Product) error {
	lines := make([]string, 0, len(ps))
	for _, p := range ps {
		lines = append(lines, encodeProduct(p))
	}
	return overwrite(s.productsPath, lines)
}

func (s *Store) LoadProducts() ([]*domain.Product, error) {
	lines, err := readLines(s.productsPath)
	if err != nil {
		return nil, err
	}
	var out []*domain.Product
	for _, ln := range lines {
		if ln == "" {
			continue
		}
		p, err := decodeProduct(ln)
		if err != nil {
			applog.Info(applog.Ctx{}, "store.skip_record", map[string]any{"file": s.productsPath, "reason": err.Error()})
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *Store) SaveUsers(us []*domain.User) error {
	lines := make([]string, 0, len(us))
	for _, u := range us {
		lines = append(lines, encodeUser(u))
	}
	return overwrite(s.usersPath, lines)
}

func (s *Store) LoadUsers() ([]*domain.User, error) {
	lines, err := readLines(s.usersPath)
	if err != nil {
		return nil, err
	}
	var out []*domain.User
	for _, ln := range lines {
		if ln == "" {
			continue
		}
		u, err := decodeUser(ln)
		if err != nil {
			applog.Info(applog.Ctx{}, "store.skip_record", map[string]any{"file": s.usersPath, "reason": err.Error()})
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (s *Store) SaveOrders(ords []*domain.Order) error {
	lines := make([]string, 0, len(ords))
	for _, o := range ords {
		lines = append(lines, encodeOrder(o))
	}
	return overwrite(s.ordersPath, lines)
}

// LoadOrders returns orders in file order. Duplicate-id handling and
// allocator advancement belong to the ledger's Restore.
func (s *Store) LoadOrders() ([]*domain.Order, error) {
	lines, err := readLines(s.ordersPath)
	if err != nil {
		return nil, err
	}
	var out []*domain.Order
	for _, ln := range lines {
		if ln == "" {
			continue
		}
		o, err := decodeOrder(ln)
		if err != nil {
			applog.Info(applog.Ctx{}, "store.skip_record", map[string]any{"file": s.ordersPath, "reason": err.Error()})
			continue
		}
		out = append(out, o)
	}
	return out, nil
}
