package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/legaldeck/backend/internal/model"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type articleDocument struct {
	ID            string    `bson:"id"`
	Title         string    `bson:"title"`
	Excerpt       string    `bson:"excerpt"`
	Content       string    `bson:"content"`
	Category      string    `bson:"category"`
	Author        string    `bson:"author"`
	PublishedDate time.Time `bson:"published_date"`
	ReadTime      int       `bson:"read_time"`
}

// storedArticle is the read shape. Articles are managed outside this service,
// so published_date may be a BSON date or an ISO-8601 string.
type storedArticle struct {
	ID            string        `bson:"id"`
	Title         string        `bson:"title"`
	Excerpt       string        `bson:"excerpt"`
	Content       string        `bson:"content"`
	Category      string        `bson:"category"`
	Author        string        `bson:"author"`
	PublishedDate bson.RawValue `bson:"published_date"`
	ReadTime      int           `bson:"read_time"`
}

func (d storedArticle) toModel() (*model.BlogArticle, error) {
	published, err := decodeTime(d.PublishedDate)
	if err != nil {
		return nil, fmt.Errorf("article %s: %w", d.ID, err)
	}
	a := &model.BlogArticle{
		ID:            d.ID,
		Title:         d.Title,
		Excerpt:       d.Excerpt,
		Content:       d.Content,
		Category:      d.Category,
		Author:        d.Author,
		PublishedDate: published,
		ReadTime:      d.ReadTime,
	}
	a.ApplyDefaults()
	return a, nil
}

const sortDateField = "_sort_date"

// MongoArticleRepository reads the blog_articles collection.
type MongoArticleRepository struct {
	coll *mongo.Collection
}

// NewMongoArticleRepository creates a MongoArticleRepository over coll.
func NewMongoArticleRepository(coll *mongo.Collection) *MongoArticleRepository {
	return &MongoArticleRepository{coll: coll}
}

var _ ArticleRepository = (*MongoArticleRepository)(nil)

func (r *MongoArticleRepository) List(ctx context.Context, limit int) ([]*model.BlogArticle, error) {
	cur, err := r.coll.Aggregate(ctx, newestArticlesPipeline(limit))
	if err != nil {
		return nil, fmt.Errorf("find articles: %w", err)
	}
	var docs []storedArticle
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode articles: %w", err)
	}

	articles := make([]*model.BlogArticle, 0, len(docs))
	for _, d := range docs {
		a, err := d.toModel()
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	// Ties and unparseable dates come back in store order; keep them stable.
	sortNewestFirst(articles)
	return articles, nil
}

// newestArticlesPipeline sorts on published_date converted to a date before
// applying limit. A plain sort orders BSON dates and ISO strings by type first,
// which would let limit drop newer string-dated articles.
func newestArticlesPipeline(limit int) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$addFields", Value: bson.D{{Key: sortDateField, Value: bson.D{{Key: "$convert", Value: bson.D{
			{Key: "input", Value: "$published_date"},
			{Key: "to", Value: "date"},
			{Key: "onError", Value: nil},
			{Key: "onNull", Value: nil},
		}}}}}}},
		{{Key: "$sort", Value: bson.D{{Key: sortDateField, Value: -1}}}},
		{{Key: "$limit", Value: int64(limit)}},
		{{Key: "$project", Value: bson.D{{Key: "_id", Value: 0}, {Key: sortDateField, Value: 0}}}},
	}
}

func (r *MongoArticleRepository) FindByID(ctx context.Context, id string) (*model.BlogArticle, error) {
	var d storedArticle
	err := r.coll.FindOne(ctx, bson.D{{Key: "id", Value: id}},
		options.FindOne().SetProjection(hideObjectID)).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find article %s: %w", id, err)
	}
	return d.toModel()
}

func (r *MongoArticleRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return n, nil
}

func (r *MongoArticleRepository) InsertMany(ctx context.Context, articles []*model.BlogArticle) error {
	if len(articles) == 0 {
		return nil
	}
	docs := make([]articleDocument, 0, len(articles))
	for _, a := range articles {
		docs = append(docs, articleDocument{
			ID:            a.ID,
			Title:         a.Title,
			Excerpt:       a.Excerpt,
			Content:       a.Content,
			Category:      a.Category,
			Author:        a.Author,
			PublishedDate: a.PublishedDate,
			ReadTime:      a.ReadTime,
		})
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert articles: %w", err)
	}
	return nil
}
