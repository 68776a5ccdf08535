package probe

import (
	"sort"
	"strings"
)

// Bucket names for the field-name classifier.
const (
	BucketLocation = "location"
	BucketCrop     = "crop"
	BucketStock    = "stock"
	BucketOutlet   = "outlet"
)

// bucketKeywords maps each bucket to the substrings that place a
// column name in it.
var bucketKeywords = map[string][]string{
	BucketLocation: {"location", "place", "area", "region", "district", "state", "address"},
	BucketCrop:     {"crop", "variety", "seed", "seedling", "type", "name"},
	BucketStock:    {"stock", "quantity", "qty", "count", "amount", "units"},
	BucketOutlet:   {"outlet", "store", "shop", "seller", "vendor"},
}

// ClassifyField returns the sorted set of buckets whose keyword list
// has at least one substring match against the case-folded column
// name. A name may match zero, one or several buckets; the result
// depends only on the name, never on cell contents.
func ClassifyField(name string) []string {
	lower := strings.ToLower(name)
	var matched []string
	for bucket, keywords := range bucketKeywords {
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				matched = append(matched, bucket)
				break
			}
		}
	}
	sort.Strings(matched)
	return matched
}
