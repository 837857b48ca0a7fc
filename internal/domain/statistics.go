package domain

// CorpusStatistics são as estatísticas sobre todo o conjunto de vendas
type CorpusStatistics struct {
	TotalTransactions int64   `json:"totalTransactions"`
	TotalRevenue      float64 `json:"totalRevenue"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}
