package comments

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/seenimoa/moodgraph/pkg/models"
)

// LoadFeed fetches an RSS/Atom comment feed and converts its items to
// comment records. Feeds carry no vote score, so Score stays zero.
func LoadFeed(ctx context.Context, url string) ([]models.CommentRecord, error) {
	feed, err := gofeed.NewParser().ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching feed %s: %w", url, err)
	}
	return feedRecords(feed), nil
}

// LoadFeedReader parses an already-fetched feed document.
func LoadFeedReader(r io.Reader) ([]models.CommentRecord, error) {
	feed, err := gofeed.NewParser().Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing feed: %w", err)
	}
	return feedRecords(feed), nil
}

func feedRecords(feed *gofeed.Feed) []models.CommentRecord {
	var records []models.CommentRecord
	for _, item := range feed.Items {
		if item == nil || item.PublishedParsed == nil {
			continue // undated items cannot pass the date filter anyway
		}
		body := item.Content
		if strings.TrimSpace(body) == "" {
			body = item.Description
		}
		if strings.TrimSpace(body) == "" {
			body = item.Title
		}
		records = append(records, models.CommentRecord{
			Timestamp: item.PublishedParsed.UTC(),
			Body:      body,
		})
	}
	return records
}
