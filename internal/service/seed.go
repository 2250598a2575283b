package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/google/uuid"
	"github.com/legaldeck/backend/internal/model"
	"github.com/legaldeck/backend/internal/repository"
)

type sampleArticle struct {
	title, excerpt, content, category string
	readTime                          int
}

var sampleArticles = []sampleArticle{
	{
		title:    "Understanding Your Legal Rights in Civil Disputes",
		excerpt:  "An informative guide on civil rights and legal procedures that every citizen should be aware of.",
		content:  "Civil disputes can arise in various situations, from property matters to contractual disagreements. Understanding your legal rights is the first step toward resolving such issues effectively. This article provides an overview of the legal framework governing civil disputes in India, the role of courts, and the importance of proper documentation. Remember, legal awareness is your best defense.",
		category: "Civil Law",
		readTime: 5,
	},
	{
		title:    "Corporate Compliance: Key Legal Requirements for Businesses",
		excerpt:  "Essential information about corporate legal compliance that business owners must know.",
		content:  "Corporate compliance involves adhering to laws, regulations, and ethical practices. This article covers key legal requirements including company registration, tax compliance, labor laws, and regulatory filings. Understanding these obligations helps businesses operate smoothly and avoid legal complications. Proper legal guidance ensures your business remains compliant with all applicable laws.",
		category: "Corporate Law",
		readTime: 6,
	},
	{
		title:    "Family Law Basics: Rights and Responsibilities",
		excerpt:  "Learn about family law matters including marriage, divorce, and custody rights in India.",
		content:  "Family law encompasses various personal matters including marriage, divorce, child custody, and property rights. This informational article outlines the basic legal framework governing family matters in India. Understanding these laws helps individuals make informed decisions during challenging times. Legal awareness in family matters is crucial for protecting your rights and those of your loved ones.",
		category: "Family Law",
		readTime: 5,
	},
}

// SampleArticles builds the seed articles, all published at now.
func SampleArticles(now time.Time) []*model.BlogArticle {
	articles := make([]*model.BlogArticle, 0, len(sampleArticles))
	for _, s := range sampleArticles {
		articles = append(articles, &model.BlogArticle{
			ID:            uuid.NewString(),
			Title:         s.title,
			Excerpt:       s.excerpt,
			Content:       s.content,
			Category:      s.category,
			Author:        model.DefaultArticleAuthor,
			PublishedDate: now.UTC(),
			ReadTime:      s.readTime,
		})
	}
	return articles
}

// SeedArticles inserts the sample articles when the catalog is empty and
// reports how many were inserted. A non-empty catalog is left untouched.
func SeedArticles(ctx context.Context, repo repository.ArticleRepository) (int, error) {
	n, err := repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	articles := SampleArticles(time.Now())
	if err := repo.InsertMany(ctx, articles); err != nil {
		return 0, err
	}
	return len(articles), nil
}

// StartupOptions tunes Startup.
type StartupOptions struct {
	Seed         bool
	PingAttempts uint
	PingDelay    time.Duration
	PingTimeout  time.Duration
}

// DefaultStartupOptions are used by the server.
var DefaultStartupOptions = StartupOptions{
	Seed:         true,
	PingAttempts: 3,
	PingDelay:    500 * time.Millisecond,
	PingTimeout:  5 * time.Second,
}

// Startup verifies the store is reachable, retrying the ping with back-off,
// and then seeds the blog catalog if opts.Seed is set. Callers decide whether
// an error is fatal; the server only logs it.
func Startup(ctx context.Context, db repository.DB, articles repository.ArticleRepository, opts StartupOptions) error {
	attempts := opts.PingAttempts
	if attempts == 0 {
		attempts = 1
	}
	err := retry.Do(
		func() error {
			pctx, cancel := context.WithTimeout(ctx, opts.PingTimeout)
			defer cancel()
			return db.Ping(pctx)
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(opts.PingDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			slog.Warn("store ping failed, retrying", "attempt", n+1, "error", err)
		}),
	)
	if err != nil {
		return fmt.Errorf("store unreachable: %w", err)
	}
	slog.Info("store reachable")

	if !opts.Seed {
		return nil
	}
	inserted, err := SeedArticles(ctx, articles)
	if err != nil {
		return fmt.Errorf("seed articles: %w", err)
	}
	if inserted > 0 {
		slog.Info("blog catalog seeded", "articles", inserted)
	}
	return nil
}
