package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mondaynail/salon-api/internal/httperr"
	"github.com/mondaynail/salon-api/internal/httpresp"
	"github.com/mondaynail/salon-api/internal/middleware"
	ucTicket "github.com/mondaynail/salon-api/internal/usecase/ticket"
)

// ======================================================
// HANDLER
// ======================================================

type WorkTicketHandler struct {
	createUC *ucTicket.CreateWorkTicket
	updateUC *ucTicket.UpdateWorkTicket
	deleteUC *ucTicket.DeleteWorkTicket
	listUC   *ucTicket.ListWorkTickets
	getUC    *ucTicket.GetWorkTicket
	log      *zap.Logger
}

func NewWorkTicketHandler(
	createUC *ucTicket.CreateWorkTicket,
	updateUC *ucTicket.UpdateWorkTicket,
	deleteUC *ucTicket.DeleteWorkTicket,
	listUC *ucTicket.ListWorkTickets,
	getUC *ucTicket.GetWorkTicket,
	log *zap.Logger,
) *WorkTicketHandler {
	return &WorkTicketHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		listUC:   listUC,
		getUC:    getUC,
		log:      log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateWorkTicketRequest struct {
	Price       float64  `json:"price" binding:"required"`
	WorkerName  string   `json:"workerName" binding:"required"`
	Description string   `json:"description"`
	OccurredAt  string   `json:"occurredAt"`
	ImageURLs   []string `json:"imageUrls"`
}

type UpdateWorkTicketRequest struct {
	Status      *string  `json:"status,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	WorkerName  *string  `json:"workerName,omitempty"`
	Description *string  `json:"description,omitempty"`
	OccurredAt  *string  `json:"occurredAt,omitempty"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *WorkTicketHandler) Create(c *gin.Context) {
	var req CreateWorkTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "ข้อมูลไม่ถูกต้อง")
		return
	}

	actorRole, actorID := actorFromContext(c)

	t, err := h.createUC.Execute(c.Request.Context(), ucTicket.CreateWorkTicketInput{
		Price:       req.Price,
		WorkerName:  req.WorkerName,
		Description: req.Description,
		OccurredAt:  req.OccurredAt,
		ImageURLs:   req.ImageURLs,
		ActorRole:   actorRole,
		ActorID:     actorID,
	})
	if err != nil {
		h.writeError(c, "create", "", err)
		return
	}

	httpresp.Created(c, t)
}

func (h *WorkTicketHandler) List(c *gin.Context) {
	tickets, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		h.writeError(c, "list", "", err)
		return
	}

	httpresp.OK(c, tickets)
}

func (h *WorkTicketHandler) Get(c *gin.Context) {
	id := c.Param("id")

	t, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, "get", id, err)
		return
	}

	httpresp.OK(c, t)
}

func (h *WorkTicketHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateWorkTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "ข้อมูลไม่ถูกต้อง")
		return
	}

	actorRole, actorID := actorFromContext(c)

	t, err := h.updateUC.Execute(c.Request.Context(), id, ucTicket.UpdateWorkTicketInput{
		Status:      req.Status,
		Price:       req.Price,
		WorkerName:  req.WorkerName,
		Description: req.Description,
		OccurredAt:  req.OccurredAt,
		ActorRole:   actorRole,
		ActorID:     actorID,
	})
	if err != nil {
		h.writeError(c, "update", id, err)
		return
	}

	httpresp.OK(c, t)
}

func (h *WorkTicketHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	actorRole, actorID := actorFromContext(c)

	if err := h.deleteUC.Execute(c.Request.Context(), id, actorRole, actorID); err != nil {
		h.writeError(c, "delete", id, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "ลบรายการเรียบร้อยแล้ว",
		"id":      id,
	})
}

// ======================================================
// HELPERS
// ======================================================

var ticketErrorMessages = map[string]string{
	"invalid_price":       "ราคาต้องมากกว่า 0",
	"missing_worker_name": "กรุณาระบุชื่อช่าง",
	"too_many_images":     "แนบรูปได้สูงสุด 5 รูปต่อรายการ",
	"invalid_image_url":   "ลิงก์รูปภาพไม่ถูกต้อง",
	"invalid_status":      "สถานะไม่ถูกต้อง",
	"invalid_occurred_at": "วันที่ไม่ถูกต้อง",
}

func (h *WorkTicketHandler) writeError(c *gin.Context, op, id string, err error) {
	if httperr.IsBusiness(err, "ticket_not_found") {
		httperr.NotFound(c, "ticket_not_found", "ไม่พบรายการงาน")
		return
	}

	if code, ok := httperr.AnyBusiness(err); ok {
		msg, known := ticketErrorMessages[code]
		if !known {
			msg = "ข้อมูลไม่ถูกต้อง"
		}
		httperr.BadRequest(c, code, msg)
		return
	}

	h.log.Error("work ticket operation failed",
		zap.String("op", op),
		zap.String("ticket_id", id),
		zap.Error(err),
	)
	httperr.Internal(c, "internal_error", "เกิดข้อผิดพลาด กรุณาลองใหม่")
}

func actorFromContext(c *gin.Context) (string, *uint) {
	role, _ := c.Get(middleware.ContextUserRole)
	roleStr, _ := role.(string)

	idVal, ok := c.Get(middleware.ContextUserID)
	if !ok {
		return roleStr, nil
	}
	id, ok := idVal.(uint)
	if !ok {
		return roleStr, nil
	}
	return roleStr, &id
}
