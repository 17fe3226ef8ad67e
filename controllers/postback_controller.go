package controllers

import (
	"errors"
	"net/url"
	"strings"

	"github.com/dealshub/DealsHub/config"
	"github.com/dealshub/DealsHub/models"
	"github.com/dealshub/DealsHub/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Network identifies a supported CPA network. The set is closed; unknown
// networks are rejected before any field extraction happens.
type Network string

const (
	NetworkOGAds   Network = "ogads"
	NetworkCPAGrip Network = "cpagrip"
	NetworkCPALead Network = "cpalead"
	NetworkGoose   Network = "goose"
)

// ErrUnknownNetwork is returned for a network name outside the closed set
var ErrUnknownNetwork = errors.New("unknown network")

// PostbackData is the normalized payload extracted from a network callback
type PostbackData struct {
	Email        string
	Payout       string
	CompletionID string
	OfferName    string
	IP           string
}

// ParseNetwork maps a path segment onto a known network, case-insensitively
func ParseNetwork(name string) (Network, error) {
	switch Network(strings.ToLower(name)) {
	case NetworkOGAds:
		return NetworkOGAds, nil
	case NetworkCPAGrip:
		return NetworkCPAGrip, nil
	case NetworkCPALead:
		return NetworkCPALead, nil
	case NetworkGoose:
		return NetworkGoose, nil
	default:
		return "", ErrUnknownNetwork
	}
}

// Extract pulls the normalized postback fields out of a query-string bag.
// Parameter names differ per network; the completion id always rides in the
// sub-id slot we hand the network when building the offer link.
func (n Network) Extract(query url.Values) PostbackData {
	switch n {
	case NetworkOGAds:
		return PostbackData{
			Email:        query.Get("aff_sub"),
			Payout:       query.Get("payout"),
			CompletionID: query.Get("aff_sub2"),
			OfferName:    query.Get("offer_name"),
			IP:           query.Get("session_ip"),
		}
	case NetworkCPAGrip:
		return PostbackData{
			Email:        query.Get("tracking_id"),
			Payout:       query.Get("amount"),
			CompletionID: query.Get("sub1"),
			OfferName:    query.Get("offer_name"),
			IP:           query.Get("session_ip"),
		}
	case NetworkCPALead:
		return PostbackData{
			Email:        query.Get("subid"),
			Payout:       query.Get("payout"),
			CompletionID: query.Get("subid2"),
			OfferName:    query.Get("campaign_name"),
			IP:           query.Get("ip_address"),
		}
	case NetworkGoose:
		return PostbackData{
			Email:        query.Get("user_id"),
			Payout:       query.Get("amount"),
			CompletionID: query.Get("sub1"),
			OfferName:    query.Get("offer_name"),
			IP:           query.Get("ip"),
		}
	}
	return PostbackData{}
}

// HandlePostback ingests a CPA network callback. A completion that is still
// pending gets the reward email and moves to completed; anything else is
// acknowledged without a second email, so redelivery of the same postback
// can never send twice.
func HandlePostback(c *gin.Context) {
	networkName := c.Param("network")
	utils.LogInfo("HandlePostback called for network: %s", networkName)

	network, err := ParseNetwork(networkName)
	if err != nil {
		utils.LogError("Unsupported postback network: %s", networkName)
		utils.BadRequest(c, "Unsupported network", nil)
		return
	}

	data := network.Extract(c.Request.URL.Query())

	if data.Email == "" || data.Payout == "" {
		utils.LogError("Postback from %s missing required fields (email: %q, payout: %q)",
			network, data.Email, data.Payout)
		utils.BadRequest(c, "Missing required postback fields", nil)
		return
	}

	// A malformed completion id gets a success=false body on HTTP 200 so the
	// network does not keep retrying a callback that can never succeed.
	if data.CompletionID == "" {
		utils.LogError("Postback from %s missing completion id", network)
		utils.SoftFailure(c, "Missing completion id")
		return
	}
	if _, err := uuid.Parse(data.CompletionID); err != nil {
		utils.LogError("Postback from %s carries invalid completion id %q", network, data.CompletionID)
		utils.SoftFailure(c, "Invalid completion id")
		return
	}

	var completion models.OfferCompletion
	if err := config.DB.First(&completion, "id = ?", data.CompletionID).Error; err != nil {
		utils.LogError("Completion %s not found: %v", data.CompletionID, err)
		utils.NotFound(c, "Completion not found")
		return
	}

	if completion.Status != models.CompletionPending {
		utils.LogInfo("Completion %s already %s, skipping email", completion.ID, completion.Status)
		utils.Success(c, "Postback acknowledged", gin.H{"status": completion.Status})
		return
	}

	emailSent := true
	if err := mailer.SendRewardEmail(completion.Email, completion.OfferName, completion.Title, completion.Code); err != nil {
		// Email delivery is best-effort; the transition still commits
		utils.LogError("Failed to send reward email for completion %s: %v", completion.ID, err)
		emailSent = false
	}

	updates := map[string]interface{}{
		"status":        models.CompletionCompleted,
		"is_email_sent": emailSent,
		"network":       string(network),
		"payout":        data.Payout,
	}
	if err := config.DB.Model(&completion).Updates(updates).Error; err != nil {
		utils.LogError("Failed to complete %s: %v", completion.ID, err)
		utils.InternalServerError(c, "Failed to process postback", err.Error())
		return
	}

	utils.LogActivity(models.ActivityPostbackReceived, "completion", completion.ID, string(network), nil, nil)

	utils.LogInfo("Completed %s via %s postback (email sent: %v)", completion.ID, network, emailSent)
	utils.Success(c, "Postback processed", gin.H{"status": models.CompletionCompleted})
}
