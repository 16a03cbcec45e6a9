package response

// IndexResponse feeds the landing page: every book newest first, the full
// ranking, and the requested page of that ranking.
type IndexResponse struct {
	ObjectList  []BookResponse                         `json:"object_list"`
	RankingList []RankedBookResponse                   `json:"ranking_list"`
	PageObj     *PaginatedResponse[RankedBookResponse] `json:"page_obj"`
}
