package controllers

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/dealshub/DealsHub/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNetwork(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Network
		wantErr bool
	}{
		{"ogads lowercase", "ogads", NetworkOGAds, false},
		{"ogads mixed case", "OGAds", NetworkOGAds, false},
		{"cpagrip", "cpagrip", NetworkCPAGrip, false},
		{"cpalead uppercase", "CPALEAD", NetworkCPALead, false},
		{"goose", "goose", NetworkGoose, false},
		{"unknown network", "adscend", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNetwork(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownNetwork)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNetworkExtract(t *testing.T) {
	tests := []struct {
		network Network
		query   url.Values
		want    PostbackData
	}{
		{
			network: NetworkOGAds,
			query: url.Values{
				"aff_sub":    {"user@example.com"},
				"aff_sub2":   {"abc-123"},
				"payout":     {"0.75"},
				"offer_name": {"Install App X"},
				"session_ip": {"41.66.1.2"},
			},
			want: PostbackData{
				Email: "user@example.com", CompletionID: "abc-123", Payout: "0.75",
				OfferName: "Install App X", IP: "41.66.1.2",
			},
		},
		{
			network: NetworkCPAGrip,
			query: url.Values{
				"tracking_id": {"user@example.com"},
				"sub1":        {"abc-123"},
				"amount":      {"1.20"},
				"offer_name":  {"Survey"},
				"session_ip":  {"105.1.2.3"},
			},
			want: PostbackData{
				Email: "user@example.com", CompletionID: "abc-123", Payout: "1.20",
				OfferName: "Survey", IP: "105.1.2.3",
			},
		},
		{
			network: NetworkCPALead,
			query: url.Values{
				"subid":         {"user@example.com"},
				"subid2":        {"abc-123"},
				"payout":        {"0.50"},
				"campaign_name": {"Quiz"},
				"ip_address":    {"197.0.0.1"},
			},
			want: PostbackData{
				Email: "user@example.com", CompletionID: "abc-123", Payout: "0.50",
				OfferName: "Quiz", IP: "197.0.0.1",
			},
		},
		{
			network: NetworkGoose,
			query: url.Values{
				"user_id":    {"user@example.com"},
				"sub1":       {"abc-123"},
				"amount":     {"2.00"},
				"offer_name": {"Signup"},
				"ip":         {"102.1.1.1"},
			},
			want: PostbackData{
				Email: "user@example.com", CompletionID: "abc-123", Payout: "2.00",
				OfferName: "Signup", IP: "102.1.1.1",
			},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.network), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.network.Extract(tt.query))
		})
	}
}

func postbackRouter() *gin.Engine {
	r := gin.New()
	r.GET("/postback/:network", HandlePostback)
	return r
}

func TestHandlePostback_UnknownNetwork(t *testing.T) {
	setupTestDB(t)
	setupDeps("gh")
	r := postbackRouter()

	w := doJSON(r, http.MethodGet, "/postback/adscend?aff_sub=a@b.com&payout=1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlePostback_MissingRequiredFields(t *testing.T) {
	setupTestDB(t)
	setupDeps("gh")
	r := postbackRouter()

	// Missing payout
	w := doJSON(r, http.MethodGet, "/postback/ogads?aff_sub=a@b.com&aff_sub2="+uuid.New().String(), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Missing email
	w = doJSON(r, http.MethodGet, "/postback/ogads?payout=1&aff_sub2="+uuid.New().String(), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlePostback_InvalidCompletionIDIsSoftFailure(t *testing.T) {
	setupTestDB(t)
	setupDeps("gh")
	r := postbackRouter()

	// A malformed id comes back as HTTP 200 with success=false, not an error code
	w := doJSON(r, http.MethodGet, "/postback/ogads?aff_sub=a@b.com&payout=1&aff_sub2=not-a-uuid", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])

	// Same for a missing id
	w = doJSON(r, http.MethodGet, "/postback/ogads?aff_sub=a@b.com&payout=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, false, body["success"])
}

func TestHandlePostback_CompletionNotFound(t *testing.T) {
	setupTestDB(t)
	setupDeps("gh")
	r := postbackRouter()

	w := doJSON(r, http.MethodGet, "/postback/ogads?aff_sub=a@b.com&payout=1&aff_sub2="+uuid.New().String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandlePostback_Idempotence(t *testing.T) {
	db := setupTestDB(t)
	fm := setupDeps("gh")
	r := postbackRouter()

	completion := models.OfferCompletion{
		ID:        uuid.New().String(),
		OfferName: "Install App X",
		Title:     "Free Gift Card",
		Code:      "GIFT50",
		Email:     "winner@example.com",
		Status:    models.CompletionPending,
	}
	require.NoError(t, db.Create(&completion).Error)

	path := "/postback/ogads?aff_sub=winner@example.com&payout=0.75&aff_sub2=" + completion.ID

	// First delivery: email sent, status moves to completed
	w := doJSON(r, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, fm.sent, 1)

	var after models.OfferCompletion
	require.NoError(t, db.First(&after, "id = ?", completion.ID).Error)
	assert.Equal(t, models.CompletionCompleted, after.Status)
	assert.True(t, after.IsEmailSent)
	assert.Equal(t, "ogads", after.Network)

	// Second delivery: acknowledged, no second email
	w = doJSON(r, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Len(t, fm.sent, 1)

	require.NoError(t, db.First(&after, "id = ?", completion.ID).Error)
	assert.Equal(t, models.CompletionCompleted, after.Status)
}

func TestHandlePostback_EmailFailureStillCompletes(t *testing.T) {
	db := setupTestDB(t)
	fm := setupDeps("gh")
	fm.fail = true
	r := postbackRouter()

	completion := models.OfferCompletion{
		ID:     uuid.New().String(),
		Email:  "winner@example.com",
		Status: models.CompletionPending,
	}
	require.NoError(t, db.Create(&completion).Error)

	w := doJSON(r, http.MethodGet, "/postback/cpagrip?tracking_id=winner@example.com&amount=1&sub1="+completion.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var after models.OfferCompletion
	require.NoError(t, db.First(&after, "id = ?", completion.ID).Error)
	assert.Equal(t, models.CompletionCompleted, after.Status)
	assert.False(t, after.IsEmailSent)
	assert.Empty(t, fm.sent)
}

func TestCreateOfferCompletion_DeDup(t *testing.T) {
	db := setupTestDB(t)
	setupDeps("gh")
	r := gin.New()
	r.POST("/offers/complete", CreateOfferCompletion)

	payload := gin.H{"offer": "Install App X", "title": "Free Gift Card", "code": "GIFT50", "email": "dup@example.com"}

	w := doJSON(r, http.MethodPost, "/offers/complete", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	// Same {offer, email} with the email still unsent returns the existing record
	w = doJSON(r, http.MethodPost, "/offers/complete", payload)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.OfferCompletion{}).
		Where("offer_name = ? AND email = ?", "Install App X", "dup@example.com").
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
