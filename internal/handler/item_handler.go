package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rackline/consign-backend/internal/inventory"
	"github.com/rackline/consign-backend/internal/model"
	"github.com/rackline/consign-backend/internal/service"
)

type ItemHandler struct {
	svc service.ItemService
}

func NewItemHandler(svc service.ItemService) *ItemHandler {
	return &ItemHandler{svc: svc}
}

type BuyerResponse struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

type ItemResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	Brand       string `json:"brand,omitempty"`
	Condition   string `json:"condition,omitempty"`
	Size        string `json:"size,omitempty"`
	Color       string `json:"color,omitempty"`
	Material    string `json:"material,omitempty"`
	Gender      string `json:"gender,omitempty"`

	Price              float64  `json:"price"`
	OriginalPrice      *float64 `json:"originalPrice,omitempty"`
	DiscountPercentage *float64 `json:"discountPercentage,omitempty"`
	DiscountReason     string   `json:"discountReason,omitempty"`
	DiscountAppliedAt  *string  `json:"discountAppliedAt,omitempty"`

	SellerID   string `json:"sellerId"`
	SellerName string `json:"sellerName,omitempty"`

	Status    string `json:"status"`
	ShelfDays int    `json:"shelfDays"`

	CreatedAt   string  `json:"createdAt"`
	ApprovedAt  *string `json:"approvedAt,omitempty"`
	LiveAt      *string `json:"liveAt,omitempty"`
	SoldAt      *string `json:"soldAt,omitempty"`
	ShippedAt   *string `json:"shippedAt,omitempty"`
	DeliveredAt *string `json:"deliveredAt,omitempty"`
	ArchivedAt  *string `json:"archivedAt,omitempty"`

	SoldPrice              *float64       `json:"soldPrice,omitempty"`
	SaleType               string         `json:"saleType,omitempty"`
	FulfillmentMethod      string         `json:"fulfillmentMethod,omitempty"`
	Buyer                  *BuyerResponse `json:"buyer,omitempty"`
	SaleTransactionID      string         `json:"saleTransactionId,omitempty"`
	TrackingNumber         string         `json:"trackingNumber,omitempty"`
	ShippingLabelGenerated bool           `json:"shippingLabelGenerated,omitempty"`

	Images []string `json:"images"`
}

type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Total int            `json:"total"`
}

type GroupResponse struct {
	Representative ItemResponse `json:"representative"`
	Quantity       int          `json:"quantity"`
	MinPrice       float64      `json:"minPrice"`
	MaxPrice       float64      `json:"maxPrice"`
	Statuses       []string     `json:"statuses"`
	SellerNames    []string     `json:"sellerNames"`
}

type FacetsResponse struct {
	Categories []string `json:"categories"`
	Brands     []string `json:"brands"`
	Conditions []string `json:"conditions"`
}

type CreateItemRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Brand       string   `json:"brand"`
	Condition   string   `json:"condition"`
	Size        string   `json:"size"`
	Color       string   `json:"color"`
	Material    string   `json:"material"`
	Gender      string   `json:"gender"`
	Price       float64  `json:"price"`
	SellerID    string   `json:"sellerId"`
	SellerName  string   `json:"sellerName"`
	SellerEmail string   `json:"sellerEmail"`
	Images      []string `json:"images"`
}

func (h *ItemHandler) Create(c echo.Context) error {
	var req CreateItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	item, err := h.svc.Create(c.Request().Context(), service.NewItemParams{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Brand:       req.Brand,
		Condition:   req.Condition,
		Size:        req.Size,
		Color:       req.Color,
		Material:    req.Material,
		Gender:      req.Gender,
		Price:       req.Price,
		SellerID:    req.SellerID,
		SellerName:  req.SellerName,
		SellerEmail: req.SellerEmail,
		ImageURLs:   req.Images,
	})
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
	}
	return c.JSON(http.StatusCreated, toItemResponse(item, time.Now()))
}

func (h *ItemHandler) Get(c echo.Context) error {
	item, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if err == service.ErrNotFound {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "item not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch item"))
	}
	return c.JSON(http.StatusOK, toItemResponse(item, time.Now()))
}

func (h *ItemHandler) List(c echo.Context) error {
	items, err := h.svc.Search(c.Request().Context(), criteriaFromQuery(c), sortFromQuery(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch items"))
	}
	now := time.Now()
	resp := ItemListResponse{
		Items: make([]ItemResponse, 0, len(items)),
		Total: len(items),
	}
	for i := range items {
		resp.Items = append(resp.Items, toItemResponse(&items[i], now))
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ItemHandler) Grouped(c echo.Context) error {
	groups, err := h.svc.Grouped(c.Request().Context(), criteriaFromQuery(c), sortFromQuery(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to group items"))
	}
	now := time.Now()
	resp := make([]GroupResponse, 0, len(groups))
	for _, g := range groups {
		statuses := make([]string, 0, len(g.Statuses))
		for _, s := range g.Statuses {
			statuses = append(statuses, string(s))
		}
		resp = append(resp, GroupResponse{
			Representative: toItemResponse(&g.Representative, now),
			Quantity:       g.Quantity,
			MinPrice:       g.MinPrice,
			MaxPrice:       g.MaxPrice,
			Statuses:       statuses,
			SellerNames:    g.SellerNames,
		})
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ItemHandler) Facets(c echo.Context) error {
	f, err := h.svc.Facets(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch facets"))
	}
	return c.JSON(http.StatusOK, FacetsResponse{
		Categories: f.Categories,
		Brands:     f.Brands,
		Conditions: f.Conditions,
	})
}

func criteriaFromQuery(c echo.Context) inventory.Criteria {
	return inventory.Criteria{
		Status:    model.Status(c.QueryParam("status")),
		Category:  c.QueryParam("category"),
		Brand:     c.QueryParam("brand"),
		Condition: c.QueryParam("condition"),
		Gender:    c.QueryParam("gender"),
		Search:    c.QueryParam("q"),
		Shipping:  inventory.ShippingState(c.QueryParam("shipping")),
	}
}

func sortFromQuery(c echo.Context) inventory.SortKey {
	if s := c.QueryParam("sort"); s != "" {
		return inventory.SortKey(s)
	}
	return inventory.SortNewest
}

func toItemResponse(item *model.Item, now time.Time) ItemResponse {
	images := make([]string, 0, len(item.Images))
	for _, img := range item.Images {
		images = append(images, img.ImageURL)
	}

	resp := ItemResponse{
		ID:                 item.ID,
		Title:              item.Title,
		Description:        item.Description,
		Category:           item.Category,
		Brand:              item.Brand,
		Condition:          item.Condition,
		Size:               item.Size,
		Color:              item.Color,
		Material:           item.Material,
		Gender:             item.Gender,
		Price:              item.Price,
		OriginalPrice:      item.OriginalPrice,
		DiscountPercentage: item.DiscountPercentage,
		DiscountReason:     item.DiscountReason,
		DiscountAppliedAt:  formatTime(item.DiscountAppliedAt),
		SellerID:           item.SellerID,
		SellerName:         item.SellerName,
		Status:             string(item.Status),
		ShelfDays:          inventory.ShelfDays(item, now),
		CreatedAt:          item.CreatedAt.Format(time.RFC3339),
		ApprovedAt:         formatTime(item.ApprovedAt),
		LiveAt:             formatTime(item.LiveAt),
		SoldAt:             formatTime(item.SoldAt),
		ShippedAt:          formatTime(item.ShippedAt),
		DeliveredAt:        formatTime(item.DeliveredAt),
		ArchivedAt:         formatTime(item.ArchivedAt),
		Images:             images,
	}

	if item.Status == model.StatusSold {
		resp.SoldPrice = item.SoldPrice
		resp.SaleType = string(item.SaleType)
		resp.FulfillmentMethod = string(item.FulfillmentMethod)
		resp.SaleTransactionID = item.SaleTransactionID
		resp.TrackingNumber = item.TrackingNumber
		resp.ShippingLabelGenerated = item.ShippingLabelGenerated
		if !item.BuyerInfo.Empty() {
			resp.Buyer = &BuyerResponse{
				Name:    item.BuyerInfo.Name,
				Email:   item.BuyerInfo.Email,
				Phone:   item.BuyerInfo.Phone,
				Address: item.BuyerInfo.Address,
			}
		}
	}
	return resp
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
