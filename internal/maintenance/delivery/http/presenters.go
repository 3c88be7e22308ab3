package http

import (
	"ppe-inventory/internal/inventory"
	"ppe-inventory/internal/maintenance"
)

type removedResp struct {
	Codigo      string `json:"codigo"`
	DuplicateID string `json:"duplicateId"`
	OriginalID  string `json:"originalId"`
}

type categoryReportResp struct {
	Category string        `json:"category"`
	Removed  []removedResp `json:"removed"`
	Count    int           `json:"count"`
}

type reportResp struct {
	Categories   []categoryReportResp `json:"categories"`
	TotalRemoved int                  `json:"totalRemoved"`
}

func newReportResp(r maintenance.Report) reportResp {
	out := reportResp{Categories: make([]categoryReportResp, len(r.Categories)), TotalRemoved: r.TotalRemoved}
	for i, cr := range r.Categories {
		removed := make([]removedResp, len(cr.Removed))
		for j, d := range cr.Removed {
			removed[j] = removedResp{Codigo: d.Code, DuplicateID: d.DuplicateID, OriginalID: d.OriginalID}
		}
		out.Categories[i] = categoryReportResp{Category: string(cr.Category), Removed: removed, Count: cr.Count()}
	}
	return out
}

// partialResp is the data of a sweep that stopped on a failed delete.
type partialResp struct {
	Report         reportResp `json:"report"`
	FailedCategory string     `json:"failedCategory"`
	FailedID       string     `json:"failedId"`
}

type collectionResp struct {
	Category    string `json:"category"`
	Count       int    `json:"count"`
	UniqueCodes int    `json:"uniqueCodes"`
}

type statsResp struct {
	Collections      []collectionResp `json:"collections"`
	TotalRecords     int              `json:"totalRecords"`
	TotalUniqueCodes int              `json:"totalUniqueCodes"`
}

func newStatsResp(s maintenance.StatsReport) statsResp {
	out := statsResp{
		Collections:      make([]collectionResp, len(s.Collections)),
		TotalRecords:     s.TotalRecords,
		TotalUniqueCodes: s.TotalUniqueCodes,
	}
	for i, cs := range s.Collections {
		out.Collections[i] = newCollectionResp(cs)
	}
	return out
}

func newCollectionResp(cs inventory.CollectionStats) collectionResp {
	return collectionResp{Category: string(cs.Category), Count: cs.Count, UniqueCodes: cs.UniqueCodes}
}
