package controllers

import (
	"github.com/dealshub/DealsHub/config"
	"github.com/dealshub/DealsHub/models"
	"github.com/dealshub/DealsHub/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ResolveCountryLink picks the offer link for a two-letter country code.
// Only gh, ke and ng can match; anything else, or a matching country with an
// empty link, yields no link.
func ResolveCountryLink(offer *models.Offer, countryCode string) (string, bool) {
	var link string
	switch countryCode {
	case "gh":
		link = offer.LinkGhana
	case "ke":
		link = offer.LinkKenya
	case "ng":
		link = offer.LinkNigeria
	default:
		return "", false
	}
	if link == "" {
		return "", false
	}
	return link, true
}

// findOfferForResolution loads the offer for the resolution endpoint. An id
// that does not parse as a UUID is not an error: it falls back to the most
// recently created offer, active or not, same as an absent id.
func findOfferForResolution(id string) (*models.Offer, error) {
	var offer models.Offer
	if id != "" {
		if _, err := uuid.Parse(id); err == nil {
			if err := config.DB.First(&offer, "id = ?", id).Error; err != nil {
				return nil, err
			}
			return &offer, nil
		}
		utils.LogDebug("Offer id %q is not a valid identifier, falling back to latest", id)
	}
	if err := config.DB.Order("created_at desc").First(&offer).Error; err != nil {
		return nil, err
	}
	return &offer, nil
}

// ResolveOffer resolves an offer link by the caller's country. Successful
// resolutions are access-logged; the logging is fire-and-forget and its
// failure never fails the request.
func ResolveOffer(c *gin.Context) {
	utils.LogInfo("ResolveOffer called")

	offer, err := findOfferForResolution(c.Param("id"))
	if err != nil {
		utils.LogError("Offer not found: %v", err)
		utils.NotFound(c, "Offer not found")
		return
	}

	ip := utils.ClientIP(c.GetHeader("X-Forwarded-For"), c.Request.RemoteAddr)
	loc := geoResolver.Resolve(ip)

	link, ok := ResolveCountryLink(offer, loc.CountryCode)
	if !ok {
		utils.LogInfo("No link available on offer %s for country %q", offer.ID, loc.CountryCode)
		utils.NotFound(c, "No link available for your country")
		return
	}

	accessLog := models.OfferAccessLog{
		OfferID:   offer.ID,
		Country:   loc.Country,
		City:      loc.City,
		IP:        ip,
		UserAgent: c.Request.UserAgent(),
	}
	if err := config.DB.Create(&accessLog).Error; err != nil {
		utils.LogError("Failed to write offer access log for %s: %v", offer.ID, err)
	}

	utils.LogInfo("Resolved offer %s for country %s", offer.ID, loc.CountryCode)
	utils.Success(c, "Offer resolved successfully", gin.H{
		"offer_id": offer.ID,
		"title":    offer.Title,
		"link":     link,
		"country":  loc.Country,
	})
}
