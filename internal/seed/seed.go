// Package seed loads the canonical fixture and generated development data into the store.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"gamereviews/internal/database"
	"gamereviews/internal/middleware"
	"gamereviews/internal/query"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// batchSize bounds the rows per INSERT so bound parameters stay under every dialect's limit.
const batchSize = 100

// Hasher hashes seed passwords.
type Hasher interface {
	Hash(ctx context.Context, password string) (string, error)
}

// Seed drops and recreates the schema, then inserts data in a single transaction.
func Seed(ctx context.Context, db *gorm.DB, data Data, hasher Hasher) error {
	hashes, err := hashPasswords(ctx, data.Users, hasher)
	if err != nil {
		return err
	}

	if err := database.Reset(ctx, db); err != nil {
		return fmt.Errorf("reset schema: %w", err)
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, stmt := range insertStatements(data, hashes) {
			if err := tx.Exec(stmt.SQL, stmt.Args...).Error; err != nil {
				return database.TranslateError(err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("insert seed data: %w", err)
	}

	middleware.Logger.InfoContext(ctx, "Seed complete",
		slog.Int("categories", len(data.Categories)),
		slog.Int("users", len(data.Users)),
		slog.Int("reviews", len(data.Reviews)),
		slog.Int("comments", len(data.Comments)),
	)
	return nil
}

// hashPasswords hashes every password concurrently; the hasher bounds the parallelism.
func hashPasswords(ctx context.Context, users []User, hasher Hasher) ([]string, error) {
	hashes := make([]string, len(users))
	g, gctx := errgroup.WithContext(ctx)
	for i, u := range users {
		g.Go(func() error {
			h, err := hasher.Hash(gctx, u.Password)
			if err != nil {
				return fmt.Errorf("hash password for %s: %w", u.Username, err)
			}
			hashes[i] = h
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return hashes, nil
}

func insertStatements(data Data, hashes []string) []query.Statement {
	var out []query.Statement

	out = append(out, batched("INSERT INTO categories (slug, description) VALUES", len(data.Categories), func(i int) []any {
		c := data.Categories[i]
		return []any{c.Slug, c.Description}
	})...)

	out = append(out, batched("INSERT INTO users (username, name, avatar_url, password_hash, access_level) VALUES", len(data.Users), func(i int) []any {
		u := data.Users[i]
		level := u.AccessLevel
		if level == "" {
			level = "user"
		}
		return []any{u.Username, u.Name, u.AvatarURL, hashes[i], level}
	})...)

	out = append(out, batched("INSERT INTO reviews (title, designer, owner, review_body, category, review_img_url, votes, created_at) VALUES", len(data.Reviews), func(i int) []any {
		r := data.Reviews[i]
		return []any{r.Title, r.Designer, r.Owner, r.ReviewBody, r.Category, r.ReviewImgURL, r.Votes, r.CreatedAt}
	})...)

	out = append(out, batched("INSERT INTO comments (body, review_id, author, votes, created_at) VALUES", len(data.Comments), func(i int) []any {
		c := data.Comments[i]
		return []any{c.Body, c.ReviewID, c.Author, c.Votes, c.CreatedAt}
	})...)

	return out
}

// batched renders multi-row INSERTs of at most batchSize rows each.
func batched(head string, n int, row func(int) []any) []query.Statement {
	var out []query.Statement
	for start := 0; start < n; start += batchSize {
		end := min(start+batchSize, n)
		b := query.NewBuilder(head)
		for i := start; i < end; i++ {
			values := row(i)
			tuple := "(" + query.Placeholders(len(values)) + ")"
			if i > start {
				tuple = ", " + tuple
			}
			b.Add(tuple, values...)
		}
		out = append(out, b.Build())
	}
	return out
}
