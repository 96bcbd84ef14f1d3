package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/overlaylab/rtsp-overlay/internal/models"
)

const OverlayIndex = "overlays"

// Search runs a fuzzy match over overlay content. The user_id term filter
// keeps results ownership-scoped no matter what the query string says.
func Search(ctx context.Context, es *elasticsearch.Client, index, userID, query string, from, size int) (int64, []models.Overlay, error) {
	body := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": []any{
					map[string]any{
						"multi_match": map[string]any{
							"query":     query,
							"fields":    []string{"content"},
							"fuzziness": "AUTO",
						},
					},
				},
				"filter": []any{
					map[string]any{"term": map[string]any{"user_id": userID}},
				},
			},
		},
		"from": from,
		"size": size,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return 0, nil, fmt.Errorf("search: encode query: %w", err)
	}

	res, err := es.Search(
		es.Search.WithContext(ctx),
		es.Search.WithIndex(index),
		es.Search.WithBody(&buf),
	)
	if err != nil {
		return 0, nil, fmt.Errorf("search: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return 0, nil, fmt.Errorf("search: %s", res.Status())
	}

	var r struct {
		Hits struct {
			Total struct{ Value int64 }             `json:"total"`
			Hits  []struct{ Source models.Overlay } `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return 0, nil, err
	}

	overlays := make([]models.Overlay, len(r.Hits.Hits))
	for i, hit := range r.Hits.Hits {
		overlays[i] = hit.Source
	}
	return r.Hits.Total.Value, overlays, nil
}

func IndexOverlay(ctx context.Context, es *elasticsearch.Client, index string, o *models.Overlay) error {
	data, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("search: encode overlay: %w", err)
	}

	res, err := es.Index(
		index,
		bytes.NewReader(data),
		es.Index.WithDocumentID(o.ID),
		es.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("search: index overlay: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("search: index overlay: %s", res.Status())
	}
	return nil
}

func RemoveOverlay(ctx context.Context, es *elasticsearch.Client, index, id string) error {
	res, err := es.Delete(
		index,
		id,
		es.Delete.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("search: remove overlay: %w", err)
	}
	defer res.Body.Close()

	// 404 means the overlay was never indexed, nothing to do.
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("search: remove overlay: %s", res.Status())
	}
	return nil
}
