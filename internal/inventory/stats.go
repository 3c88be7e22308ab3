package inventory

// CountCodes summarizes items of category c: how many records there are and
// how many distinct codes they carry.
func CountCodes(c Category, items []Item) CollectionStats {
	codes := make(map[string]struct{}, len(items))
	for _, item := range items {
		codes[item.Code] = struct{}{}
	}
	return CollectionStats{Category: c, Count: len(items), UniqueCodes: len(codes)}
}
