package repository

import (
	"slices"

	"github.com/legaldeck/backend/internal/model"
)

// sortNewestFirst orders articles by PublishedDate descending. The sort is
// stable so equal dates keep the order the store returned them in.
func sortNewestFirst(articles []*model.BlogArticle) {
	slices.SortStableFunc(articles, func(a, b *model.BlogArticle) int {
		return b.PublishedDate.Compare(a.PublishedDate)
	})
}
