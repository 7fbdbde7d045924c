package gormdb_adapter

import "property-search-service/internal/core/domain"

func toPropertyModel(p domain.Property) propertyModel {
	return propertyModel{
		ID:                p.ID,
		Name:              p.Name,
		Address:           p.Address,
		Latitude:          p.Latitude,
		Longitude:         p.Longitude,
		Station:           p.Station,
		WalkingMinutes:    p.WalkingMinutes,
		Rent:              p.Rent,
		ManagementFee:     p.ManagementFee,
		Deposit:           p.Deposit,
		KeyMoney:          p.KeyMoney,
		FloorPlan:         p.FloorPlan,
		SizeSqm:           p.SizeSqm,
		BuildingStructure: p.BuildingStructure,
		BuiltYear:         p.BuiltYear,
		TotalFloors:       p.TotalFloors,
		Floor:             p.Floor,
		CornerRoom:        p.CornerRoom,
		Status:            p.Status,
		SiteURL:           p.SiteURL,
		MainImageURL:      p.MainImageURL,
		Geohash:           p.Geohash,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

// propertyUpdateColumns - все изменяемые колонки объекта, обновляются целиком,
// включая нулевые значения и NULL
func propertyUpdateColumns(p domain.Property) map[string]interface{} {
	return map[string]interface{}{
		"name":               p.Name,
		"address":            p.Address,
		"latitude":           p.Latitude,
		"longitude":          p.Longitude,
		"station":            p.Station,
		"walking_minutes":    p.WalkingMinutes,
		"rent":               p.Rent,
		"management_fee":     p.ManagementFee,
		"deposit":            p.Deposit,
		"key_money":          p.KeyMoney,
		"floor_plan":         p.FloorPlan,
		"size_sqm":           p.SizeSqm,
		"building_structure": p.BuildingStructure,
		"built_year":         p.BuiltYear,
		"total_floors":       p.TotalFloors,
		"floor":              p.Floor,
		"corner_room":        p.CornerRoom,
		"status":             p.Status,
		"site_url":           p.SiteURL,
		"main_image_url":     p.MainImageURL,
		"geohash":            p.Geohash,
		"updated_at":         p.UpdatedAt,
	}
}

func toDomainProperty(m propertyModel) domain.Property {
	p := domain.Property{
		ID:                m.ID,
		Name:              m.Name,
		Address:           m.Address,
		Latitude:          m.Latitude,
		Longitude:         m.Longitude,
		Station:           m.Station,
		WalkingMinutes:    m.WalkingMinutes,
		Rent:              m.Rent,
		ManagementFee:     m.ManagementFee,
		Deposit:           m.Deposit,
		KeyMoney:          m.KeyMoney,
		FloorPlan:         m.FloorPlan,
		SizeSqm:           m.SizeSqm,
		BuildingStructure: m.BuildingStructure,
		BuiltYear:         m.BuiltYear,
		TotalFloors:       m.TotalFloors,
		Floor:             m.Floor,
		CornerRoom:        m.CornerRoom,
		Status:            m.Status,
		SiteURL:           m.SiteURL,
		MainImageURL:      m.MainImageURL,
		Geohash:           m.Geohash,
		CreatedAt:         m.CreatedAt.UTC(),
		UpdatedAt:         m.UpdatedAt.UTC(),
		BikeParkings:      make([]domain.BikeParking, 0, len(m.BikeParkings)),
		Notifications:     make([]domain.Notification, 0, len(m.Notifications)),
	}

	if m.InternetProvider != nil {
		ip := toDomainInternetProvider(*m.InternetProvider)
		p.InternetProvider = &ip
	}
	for _, b := range m.BikeParkings {
		p.BikeParkings = append(p.BikeParkings, toDomainBikeParking(b))
	}
	for _, n := range m.Notifications {
		p.Notifications = append(p.Notifications, toDomainNotification(n))
	}
	return p
}

func toInternetProviderModel(ip domain.InternetProvider) internetProviderModel {
	return internetProviderModel{
		ID:           ip.ID,
		PropertyID:   ip.PropertyID,
		FletsPlan:    ip.FletsPlan,
		AuHikariPlan: ip.AuHikariPlan,
		NuroPlan:     ip.NuroPlan,
		JcomPlan:     ip.JcomPlan,
		CheckedAt:    ip.CheckedAt,
	}
}

func internetProviderUpdateColumns(ip domain.InternetProvider) map[string]interface{} {
	return map[string]interface{}{
		"property_id":    ip.PropertyID,
		"flets_plan":     ip.FletsPlan,
		"au_hikari_plan": ip.AuHikariPlan,
		"nuro_plan":      ip.NuroPlan,
		"jcom_plan":      ip.JcomPlan,
		"checked_at":     ip.CheckedAt,
	}
}

func toDomainInternetProvider(m internetProviderModel) domain.InternetProvider {
	return domain.InternetProvider{
		ID:           m.ID,
		PropertyID:   m.PropertyID,
		FletsPlan:    m.FletsPlan,
		AuHikariPlan: m.AuHikariPlan,
		NuroPlan:     m.NuroPlan,
		JcomPlan:     m.JcomPlan,
		CheckedAt:    m.CheckedAt.UTC(),
	}
}

func toBikeParkingModel(b domain.BikeParking) bikeParkingModel {
	return bikeParkingModel{
		ID:          b.ID,
		PropertyID:  b.PropertyID,
		ParkingName: b.ParkingName,
		Address:     b.Address,
		Latitude:    b.Latitude,
		Longitude:   b.Longitude,
		Distance:    b.Distance,
		Fee:         b.Fee,
		ParkingURL:  b.ParkingURL,
		CreatedAt:   b.CreatedAt,
	}
}

func bikeParkingUpdateColumns(b domain.BikeParking) map[string]interface{} {
	return map[string]interface{}{
		"property_id":  b.PropertyID,
		"parking_name": b.ParkingName,
		"address":      b.Address,
		"latitude":     b.Latitude,
		"longitude":    b.Longitude,
		"distance":     b.Distance,
		"fee":          b.Fee,
		"parking_url":  b.ParkingURL,
	}
}

func toDomainBikeParking(m bikeParkingModel) domain.BikeParking {
	return domain.BikeParking{
		ID:          m.ID,
		PropertyID:  m.PropertyID,
		ParkingName: m.ParkingName,
		Address:     m.Address,
		Latitude:    m.Latitude,
		Longitude:   m.Longitude,
		Distance:    m.Distance,
		Fee:         m.Fee,
		ParkingURL:  m.ParkingURL,
		CreatedAt:   m.CreatedAt.UTC(),
	}
}

func toNotificationModel(n domain.Notification) notificationModel {
	return notificationModel{
		ID:            n.ID,
		PropertyID:    n.PropertyID,
		NotifiedAt:    n.NotifiedAt,
		LineMessageID: n.LineMessageID,
		CreatedAt:     n.CreatedAt,
	}
}

func toDomainNotification(m notificationModel) domain.Notification {
	return domain.Notification{
		ID:            m.ID,
		PropertyID:    m.PropertyID,
		NotifiedAt:    m.NotifiedAt.UTC(),
		LineMessageID: m.LineMessageID,
		CreatedAt:     m.CreatedAt.UTC(),
	}
}
