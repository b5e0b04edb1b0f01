package handler

import (
	"net/http"

	"github.com/geosense/geosense/internal/api/models"
	"github.com/geosense/geosense/internal/api/response"
	"github.com/geosense/geosense/internal/config"
)

// CitiesHandler handles the city metadata endpoint.
type CitiesHandler struct {
	cities *config.CityRegistry
}

// NewCitiesHandler creates a new CitiesHandler.
func NewCitiesHandler(cities *config.CityRegistry) *CitiesHandler {
	return &CitiesHandler{cities: cities}
}

// ListCities handles GET /v1/metadata/cities.
func (h *CitiesHandler) ListCities(w http.ResponseWriter, r *http.Request) {
	list := models.CityList{
		Items: make([]models.CityInfo, 0, h.cities.Count()),
	}

	for _, key := range h.cities.Keys() {
		profile, _ := h.cities.Lookup(key)
		list.Items = append(list.Items, models.CityInfo{
			Key:   key,
			Name:  profile.WAQIName,
			Point: models.Point{Lat: profile.Lat, Lon: profile.Lon},
			Overview: models.CityOverview{
				TotalCO2Tons:       profile.Overview.TotalCO2Tons,
				FuelWastedLiters:   profile.Overview.FuelWastedLiters,
				AffectedPopulation: profile.Overview.AffectedPopulation,
				EcoScore:           profile.Overview.EcoScore,
			},
		})
	}

	response.JSON(w, r, http.StatusOK, list)
}
