package handlers

import (
	"net/http"

	"car-marketplace-api/models"
	"car-marketplace-api/response"
	"car-marketplace-api/services"

	"github.com/gin-gonic/gin"
)

type CarHandler struct {
	cars *services.CarService
}

func NewCarHandler(cars *services.CarService) *CarHandler {
	return &CarHandler{cars: cars}
}

type ListCarsQuery struct {
	MinPrice int    `form:"min_price,default=0"`
	MaxPrice int    `form:"max_price,default=100000"`
	Brand    string `form:"brand"`
	Page     int    `form:"page,default=1" binding:"min=1,max=1000000"`
}

// CreateCarRequest has no owner field: the owner always comes from the token
type CreateCarRequest struct {
	Brand string `json:"brand" binding:"required,carbrand"`
	Make  string `json:"make" binding:"required"`
	Year  int    `json:"year" binding:"required,gte=1886,lte=2100"`
	Price int    `json:"price" binding:"required,gt=0"`
	Km    int    `json:"km" binding:"gte=0"`
	Cm3   int    `json:"cm3" binding:"gte=0"`
}

type UpdateCarRequest struct {
	Brand *string `json:"brand" binding:"omitempty,carbrand"`
	Make  *string `json:"make" binding:"omitempty,min=1"`
	Year  *int    `json:"year" binding:"omitempty,gte=1886,lte=2100"`
	Price *int    `json:"price" binding:"omitempty,gt=0"`
	Km    *int    `json:"km" binding:"omitempty,gte=0"`
	Cm3   *int    `json:"cm3" binding:"omitempty,gte=0"`
}

func (r UpdateCarRequest) patch() models.CarPatch {
	return models.CarPatch{
		Brand: r.Brand,
		Make:  r.Make,
		Year:  r.Year,
		Price: r.Price,
		Km:    r.Km,
		Cm3:   r.Cm3,
	}
}

// List returns one page of cars priced strictly between min_price and max_price
func (h *CarHandler) List(c *gin.Context) {
	var q ListCarsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, queryError(err))
		return
	}

	cars, err := h.cars.List(c.Request.Context(), models.CarFilter{
		MinPrice: q.MinPrice,
		MaxPrice: q.MaxPrice,
		Brand:    q.Brand,
		Page:     q.Page,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, cars)
}

func (h *CarHandler) Create(c *gin.Context) {
	ownerID, err := callerID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bodyError(err))
		return
	}

	car, err := h.cars.Create(c.Request.Context(), models.Car{
		Brand: req.Brand,
		Make:  req.Make,
		Year:  req.Year,
		Price: req.Price,
		Km:    req.Km,
		Cm3:   req.Cm3,
	}, ownerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, car)
}

func (h *CarHandler) Get(c *gin.Context) {
	id, err := carID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	car, err := h.cars.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, car)
}

// Update applies a partial update (only by the owner or an admin)
func (h *CarHandler) Update(c *gin.Context) {
	caller, err := callerID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	id, err := carID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req UpdateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bodyError(err))
		return
	}

	car, err := h.cars.Update(c.Request.Context(), id, req.patch(), caller)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, car)
}

func (h *CarHandler) Delete(c *gin.Context) {
	id, err := carID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.cars.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
