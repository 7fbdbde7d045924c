package domain

import "time"

// InternetProvider - доступные по адресу объекта тарифы интернет-провайдеров.
// На один объект приходится не больше одной записи.
type InternetProvider struct {
	ID         int64
	PropertyID int64

	FletsPlan    *string
	AuHikariPlan *string
	NuroPlan     *string
	JcomPlan     *string

	CheckedAt time.Time
}

type InternetProviderInput struct {
	PropertyID   int64
	FletsPlan    *string
	AuHikariPlan *string
	NuroPlan     *string
	JcomPlan     *string
	CheckedAt    time.Time
}

// Replaced возвращает копию записи со всеми полями из in.
func (ip InternetProvider) Replaced(in InternetProviderInput) InternetProvider {
	next := ip
	next.PropertyID = in.PropertyID
	next.FletsPlan = copyString(in.FletsPlan)
	next.AuHikariPlan = copyString(in.AuHikariPlan)
	next.NuroPlan = copyString(in.NuroPlan)
	next.JcomPlan = copyString(in.JcomPlan)
	next.CheckedAt = in.CheckedAt
	return next
}
