package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/CampusHaven/internal/domain"
	"github.com/stpnv0/CampusHaven/internal/handler/dto"
	hmocks "github.com/stpnv0/CampusHaven/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

type svcMocks struct {
	session   *hmocks.MockSessionSvc
	listing   *hmocks.MockListingSvc
	booking   *hmocks.MockBookingSvc
	wishlist  *hmocks.MockWishlistSvc
	dashboard *hmocks.MockDashboardSvc
}

func setupRouter(t *testing.T) (*svcMocks, http.Handler) {
	t.Helper()
	m := &svcMocks{
		session:   hmocks.NewMockSessionSvc(t),
		listing:   hmocks.NewMockListingSvc(t),
		booking:   hmocks.NewMockBookingSvc(t),
		wishlist:  hmocks.NewMockWishlistSvc(t),
		dashboard: hmocks.NewMockDashboardSvc(t),
	}

	h := NewHandler(m.session, m.listing, m.booking, m.wishlist, m.dashboard)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/auth/signup", h.Signup)
		api.POST("/auth/login", h.Login)
		api.POST("/auth/logout", h.Logout)
		api.GET("/auth/session", h.GetSession)
		api.GET("/listings", h.ListListings)
		api.GET("/listings/featured", h.FeaturedListings)
		api.GET("/listings/:id", h.GetListing)
		api.POST("/listings", h.CreateListing)
		api.POST("/listings/:id/book", h.BookListing)
		api.POST("/listings/:id/wishlist", h.ToggleWishlist)
		api.GET("/dashboard", h.GetDashboard)
		api.GET("/users", h.ListUsers)
	}

	return m, r
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func student() *domain.User {
	return &domain.User{ID: uuid.NewString(), Name: "Asha", Email: "asha@campus.edu", Role: domain.RoleStudent, CreatedAt: time.Now()}
}

func owner() *domain.User {
	return &domain.User{ID: uuid.NewString(), Name: "Ravi", Email: "ravi@campus.edu", Role: domain.RoleOwner, CreatedAt: time.Now()}
}

// --- Auth ---

func TestHandler_Signup_Success(t *testing.T) {
	m, r := setupRouter(t)

	u := student()
	m.session.EXPECT().Signup(mock.Anything, domain.SignupInput{
		Name: "Asha", Email: "asha@campus.edu", Password: "pw", Role: "student",
	}).Return(u, nil)

	w := doJSON(r, http.MethodPost, "/api/auth/signup", dto.SignupRequest{
		Name: "Asha", Email: "asha@campus.edu", Password: "pw", Role: "student",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, u.ID, resp.ID)
	assert.Equal(t, "student", resp.Role)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestHandler_Signup_DuplicateEmail(t *testing.T) {
	m, r := setupRouter(t)

	m.session.EXPECT().Signup(mock.Anything, mock.Anything).Return(nil, domain.ErrDuplicateEmail)

	w := doJSON(r, http.MethodPost, "/api/auth/signup", dto.SignupRequest{
		Name: "Asha", Email: "asha@campus.edu", Password: "pw", Role: "student",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Signup_BadRequest(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/auth/signup", map[string]string{"name": "Asha"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Signup_UnknownRole(t *testing.T) {
	m, r := setupRouter(t)

	m.session.EXPECT().Signup(mock.Anything, mock.Anything).
		Return(nil, errors.Join(domain.ErrValidation, errors.New("unknown role")))

	w := doJSON(r, http.MethodPost, "/api/auth/signup", dto.SignupRequest{
		Name: "Asha", Email: "asha@campus.edu", Password: "pw", Role: "landlord",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	m, r := setupRouter(t)

	m.session.EXPECT().Login(mock.Anything, "asha@campus.edu", "wrong").Return(nil, domain.ErrInvalidCredentials)

	w := doJSON(r, http.MethodPost, "/api/auth/login", dto.LoginRequest{Email: "asha@campus.edu", Password: "wrong"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_Login_Success(t *testing.T) {
	m, r := setupRouter(t)

	u := student()
	m.session.EXPECT().Login(mock.Anything, "asha@campus.edu", "pw").Return(u, nil)

	w := doJSON(r, http.MethodPost, "/api/auth/login", dto.LoginRequest{Email: "asha@campus.edu", Password: "pw"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_Logout(t *testing.T) {
	m, r := setupRouter(t)

	m.session.EXPECT().Logout(mock.Anything).Return(nil)

	w := doJSON(r, http.MethodPost, "/api/auth/logout", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetSession(t *testing.T) {
	t.Run("logged out", func(t *testing.T) {
		m, r := setupRouter(t)
		m.session.EXPECT().CurrentUser(mock.Anything).Return(nil, nil)

		w := doJSON(r, http.MethodGet, "/api/auth/session", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"logged_in":false}`, w.Body.String())
	})

	t.Run("logged in", func(t *testing.T) {
		m, r := setupRouter(t)
		u := student()
		m.session.EXPECT().CurrentUser(mock.Anything).Return(u, nil)

		w := doJSON(r, http.MethodGet, "/api/auth/session", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp dto.SessionResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.LoggedIn)
		require.NotNil(t, resp.User)
		assert.Equal(t, u.ID, resp.User.ID)
	})
}

// --- Listings ---

func TestHandler_ListListings_Criteria(t *testing.T) {
	m, r := setupRouter(t)

	m.listing.EXPECT().Search(mock.Anything, mock.MatchedBy(func(c domain.ListingCriteria) bool {
		return c.SearchText == "gate" && c.Type == "PG" && c.MaxPrice != nil && *c.MaxPrice == 3000
	})).Return([]*domain.Listing{{ID: "l1", Title: "Sunrise PG", Type: "PG", Price: 2500}}, nil)

	w := doJSON(r, http.MethodGet, "/api/listings?q=gate&type=PG&max_price=3000", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []dto.ListingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "l1", resp[0].ID)
}

func TestHandler_ListListings_NoMaxPrice(t *testing.T) {
	m, r := setupRouter(t)

	m.listing.EXPECT().Search(mock.Anything, domain.ListingCriteria{}).Return([]*domain.Listing{}, nil)

	w := doJSON(r, http.MethodGet, "/api/listings?max_price=", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandler_ListListings_InvalidMaxPrice(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api/listings?max_price=cheap", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_FeaturedListings(t *testing.T) {
	m, r := setupRouter(t)

	m.listing.EXPECT().Featured(mock.Anything, 0).Return([]*domain.Listing{{ID: "a"}, {ID: "b"}}, nil)

	w := doJSON(r, http.MethodGet, "/api/listings/featured", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []dto.ListingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_GetListing(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.NewString()
	m.listing.EXPECT().Details(mock.Anything, id).Return(&domain.ListingDetails{
		Listing: domain.Listing{ID: id, Title: "Sunrise PG"},
		Owner:   domain.OwnerContact{Name: domain.FallbackOwnerName, Email: domain.FallbackOwnerEmail},
	}, nil)

	w := doJSON(r, http.MethodGet, "/api/listings/"+id, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.ListingDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.FallbackOwnerEmail, resp.Owner.Email)
}

func TestHandler_GetListing_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api/listings/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetListing_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.NewString()
	m.listing.EXPECT().Details(mock.Anything, id).Return(nil, domain.ErrListingNotFound)

	w := doJSON(r, http.MethodGet, "/api/listings/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CreateListing_Owner(t *testing.T) {
	m, r := setupRouter(t)

	o := owner()
	m.session.EXPECT().CurrentUser(mock.Anything).Return(o, nil)
	m.listing.EXPECT().Publish(mock.Anything, o, mock.MatchedBy(func(in domain.CreateListingInput) bool {
		return in.Title == "Sunrise PG" && in.Price == 4000
	})).Return(&domain.Listing{ID: uuid.NewString(), OwnerID: o.ID, Title: "Sunrise PG", Price: 4000}, nil)

	w := doJSON(r, http.MethodPost, "/api/listings", dto.CreateListingRequest{
		Title: "Sunrise PG", Location: "North Gate", Type: "PG", Price: 4000,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateListing_StudentForbidden(t *testing.T) {
	m, r := setupRouter(t)

	m.session.EXPECT().CurrentUser(mock.Anything).Return(student(), nil)

	w := doJSON(r, http.MethodPost, "/api/listings", dto.CreateListingRequest{
		Title: "Sunrise PG", Location: "North Gate", Type: "PG", Price: 4000,
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CreateListing_NotLoggedIn(t *testing.T) {
	m, r := setupRouter(t)

	m.session.EXPECT().CurrentUser(mock.Anything).Return(nil, nil)

	w := doJSON(r, http.MethodPost, "/api/listings", dto.CreateListingRequest{Title: "X"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Bookings and wishlist ---

func TestHandler_BookListing_Success(t *testing.T) {
	m, r := setupRouter(t)

	s := student()
	listingID := uuid.NewString()
	updated := *s
	updated.Bookings = []domain.Booking{{ListingID: listingID, Status: domain.BookingStatusPending, Date: time.Now()}}

	m.session.EXPECT().CurrentUser(mock.Anything).Return(s, nil)
	m.booking.EXPECT().Book(mock.Anything, s.ID, listingID).Return(&updated, nil)

	w := doJSON(r, http.MethodPost, "/api/listings/"+listingID+"/book", nil)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "pending", resp.Bookings[0].Status)
}

func TestHandler_BookListing_OwnerForbidden(t *testing.T) {
	m, r := setupRouter(t)

	m.session.EXPECT().CurrentUser(mock.Anything).Return(owner(), nil)

	w := doJSON(r, http.MethodPost, "/api/listings/"+uuid.NewString()+"/book", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_BookListing_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	s := student()
	listingID := uuid.NewString()
	m.session.EXPECT().CurrentUser(mock.Anything).Return(s, nil)
	m.booking.EXPECT().Book(mock.Anything, s.ID, listingID).Return(nil, domain.ErrListingNotFound)

	w := doJSON(r, http.MethodPost, "/api/listings/"+listingID+"/book", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ToggleWishlist(t *testing.T) {
	m, r := setupRouter(t)

	s := student()
	listingID := uuid.NewString()
	updated := *s
	updated.Wishlist = []string{listingID}

	m.session.EXPECT().CurrentUser(mock.Anything).Return(s, nil)
	m.wishlist.EXPECT().Toggle(mock.Anything, s.ID, listingID).Return(&updated, nil)

	w := doJSON(r, http.MethodPost, "/api/listings/"+listingID+"/wishlist", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.WishlistResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Saved)
	assert.Equal(t, []string{listingID}, resp.User.Wishlist)
}

// --- Dashboard and users ---

func TestHandler_GetDashboard(t *testing.T) {
	m, r := setupRouter(t)

	o := owner()
	m.session.EXPECT().CurrentUser(mock.Anything).Return(o, nil)
	m.dashboard.EXPECT().Build(mock.Anything, o).Return(&domain.Dashboard{
		Role:     domain.RoleOwner,
		Welcome:  "Welcome, Ravi",
		Listings: []domain.Listing{{ID: "l1"}},
	}, nil)

	w := doJSON(r, http.MethodGet, "/api/dashboard", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.DashboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Welcome, Ravi", resp.Welcome)
	assert.Len(t, resp.Listings, 1)
}

func TestHandler_GetDashboard_StorageError(t *testing.T) {
	m, r := setupRouter(t)

	m.session.EXPECT().CurrentUser(mock.Anything).Return(nil, errors.New("store down"))

	w := doJSON(r, http.MethodGet, "/api/dashboard", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestHandler_ListUsers(t *testing.T) {
	m, r := setupRouter(t)

	m.listing.EXPECT().Users(mock.Anything).Return([]*domain.User{student(), owner()}, nil)

	w := doJSON(r, http.MethodGet, "/api/users", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_GetDashboard_StudentEmptySections(t *testing.T) {
	m, r := setupRouter(t)

	s := student()
	m.session.EXPECT().CurrentUser(mock.Anything).Return(s, nil)
	m.dashboard.EXPECT().Build(mock.Anything, s).Return(&domain.Dashboard{
		Role:     domain.RoleStudent,
		Welcome:  "Welcome, Asha",
		Wishlist: []domain.Listing{},
		Bookings: []domain.BookedListing{},
	}, nil)

	w := doJSON(r, http.MethodGet, "/api/dashboard", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"role":"student","welcome":"Welcome, Asha","wishlist":[],"bookings":[]}`, w.Body.String())
}
