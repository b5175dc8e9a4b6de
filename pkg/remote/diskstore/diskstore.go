// Package diskstore implements the remote store contract on local disk. Each
// user gets a directory of one JSON file per entry date, managed through
// diskv. It doubles as the offline backend and as the landing zone for an
// external sync agent, which is why it also supports change watching.
package diskstore

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/journali/pkg/remote"
)

// Store is a diskv-backed remote.Store.
type Store struct {
	d        *diskv.Diskv
	basePath string
}

var _ remote.Store = (*Store)(nil)

// New opens (or creates on first write) the store rooted at basePath.
func New(basePath string) *Store {
	return &Store{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			CacheSizeMax:      1024 * 1024, // 1MB
		}),
		basePath: basePath,
	}
}

// BasePath reports the directory backing the store.
func (s *Store) BasePath() string { return s.basePath }

// FetchEntries scans the user's bucket for rows inside the inclusive
// [start, end] date range, sorted by date.
func (s *Store) FetchEntries(ctx context.Context, user, start, end string) ([]remote.Row, error) {
	bucket := toBucket(user)
	rows := make([]remote.Row, 0)
	for key := range s.d.Keys(ctx.Done()) {
		b, date, ok := splitKey(key)
		if !ok || b != bucket {
			continue
		}
		// Zero-padded keys sort lexically in date order, so plain string
		// comparison implements the range filter.
		if date < start || date > end {
			continue
		}
		row, err := s.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "diskstore: %s: %s\n", key, err)
			continue
		}
		rows = append(rows, row)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })
	return rows, nil
}

// UpsertEntry replaces whatever is stored at (user, date).
func (s *Store) UpsertEntry(ctx context.Context, user, date, content string) error {
	data, err := json.Marshal(remote.Row{Date: date, Content: content})
	if err != nil {
		return err
	}
	if err := s.d.Write(toKey(user, date), data); err != nil {
		return fmt.Errorf("diskstore: write %s: %w", date, err)
	}
	return nil
}

// DeleteEntry erases the row at (user, date). Missing rows are fine.
func (s *Store) DeleteEntry(ctx context.Context, user, date string) error {
	key := toKey(user, date)
	if !s.d.Has(key) {
		return nil
	}
	if err := s.d.Erase(key); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("diskstore: erase %s: %w", date, err)
	}
	return nil
}

func (s *Store) read(key string) (remote.Row, error) {
	val, err := s.d.Read(key)
	if err != nil {
		return remote.Row{}, err
	}
	row := remote.Row{}
	if err := json.Unmarshal(val, &row); err != nil {
		return remote.Row{}, err
	}
	if row.Date == "" {
		_, row.Date, _ = splitKey(key)
	}
	return row, nil
}

// Keys look like `bucket@date` where bucket is the base64url user id. The
// separator cannot appear in either half, and diskv maps the bucket to a
// directory and the date to a file name.

func toBucket(user string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(user))
}

func fromBucket(bucket string) string {
	user, err := base64.RawURLEncoding.DecodeString(bucket)
	if err != nil {
		return ""
	}
	return string(user)
}

func toKey(user, date string) string {
	return toBucket(user) + "@" + date
}

func splitKey(key string) (bucket, date string, ok bool) {
	return strings.Cut(key, "@")
}

func keyToPathTransform(s string) *diskv.PathKey {
	bucket, date, _ := splitKey(s)
	return &diskv.PathKey{
		Path:     []string{bucket},
		FileName: date,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s@%s", strings.Join(pathKey.Path, "@"), pathKey.FileName)
}
