package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abdulhaseebkhan2166/saranda-quest/internal/catalog"
	"github.com/abdulhaseebkhan2166/saranda-quest/internal/constants"
	"github.com/abdulhaseebkhan2166/saranda-quest/internal/service"
)

// Handler wires the play session to the HTTP surface.
type Handler struct {
	session *service.Session
	regions *catalog.RegionTable
	hub     *LogHub
}

// NewHandler builds the API handler and connects the battle log to the
// websocket hub.
func NewHandler(session *service.Session, regions *catalog.RegionTable) *Handler {
	h := &Handler{session: session, regions: regions, hub: NewLogHub()}
	session.SetLogSink(h.hub.Broadcast)
	return h
}

// Register mounts every route under the API prefix.
func (h *Handler) Register(r *gin.Engine) {
	api := r.Group(constants.RouteAPIPrefix)

	api.GET(constants.RouteState, h.getState)
	api.GET(constants.RouteStream, h.hub.ServeWS)
	api.GET(constants.RouteRegions, h.getRegions)
	api.GET(constants.RouteDex, h.getDex)

	api.POST(constants.RouteSearch, h.postSearch)
	api.POST(constants.RouteGym, h.postGym)
	api.POST(constants.RouteLeague, h.postLeague)

	api.POST(constants.RouteBattleAttack, h.postAttack)
	api.POST(constants.RouteBattleCapture, h.postCapture)
	api.POST(constants.RouteBattleSwitch, h.postSwitch)
	api.POST(constants.RouteBattleFlee, h.postFlee)
	api.POST(constants.RouteBattleAcknowledge, h.postAcknowledge)

	api.POST(constants.RoutePartySwap, h.postPartySwap)
	api.POST(constants.RoutePartyHeal, h.postPartyHeal)
	api.POST(constants.RouteBoxDeposit, h.postBoxDeposit)
	api.POST(constants.RouteBoxWithdraw, h.postBoxWithdraw)
	api.POST(constants.RouteBoxRelease, h.postBoxRelease)

	api.POST(constants.RouteStarter, h.postStarter)
	api.POST(constants.RouteTrade, h.postTrade)
	api.POST(constants.RouteNature, h.postNature)

	api.POST(constants.RouteItemUse, h.postItemUse)
	api.POST(constants.RouteItemEquip, h.postItemEquip)
	api.POST(constants.RouteItemStrip, h.postItemUnequip)
	api.POST(constants.RouteShopBuy, h.postShopBuy)
	api.POST(constants.RouteShopSell, h.postShopSell)

	api.GET(constants.RouteEvolutionPending, h.getEvolution)
	api.POST(constants.RouteEvolutionConfirm, h.postEvolutionConfirm)
	api.POST(constants.RouteEvolutionDecline, h.postEvolutionDecline)
}

func (h *Handler) getState(c *gin.Context) {
	c.JSON(http.StatusOK, h.session.Snapshot())
}

func (h *Handler) getRegions(c *gin.Context) {
	c.JSON(http.StatusOK, h.regions)
}

func (h *Handler) getDex(c *gin.Context) {
	view := h.session.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"seen":   view.Player.Seen,
		"caught": view.Player.Caught,
		"badges": view.Player.Badges,
	})
}

type regionRequest struct {
	Region string `json:"region"`
}

func (h *Handler) postSearch(c *gin.Context) {
	var req regionRequest
	_ = c.ShouldBindJSON(&req)
	h.respond(c, h.session.StartSearch(req.Region))
}

func (h *Handler) postGym(c *gin.Context) {
	h.respond(c, h.session.StartGymChallenge(c.Param("gymID")))
}

func (h *Handler) postLeague(c *gin.Context) {
	var req regionRequest
	_ = c.ShouldBindJSON(&req)
	h.respond(c, h.session.StartLeagueChallenge(req.Region))
}

type attackRequest struct {
	Move string `json:"move" binding:"required"`
}

func (h *Handler) postAttack(c *gin.Context) {
	var req attackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	h.respond(c, h.session.Attack(req.Move))
}

func (h *Handler) postCapture(c *gin.Context) {
	h.respond(c, h.session.AttemptCapture())
}

type creatureRequest struct {
	UID string `json:"uid" binding:"required"`
}

func (h *Handler) postSwitch(c *gin.Context) {
	var req creatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	h.respond(c, h.session.Switch(req.UID))
}

func (h *Handler) postFlee(c *gin.Context) {
	h.respond(c, h.session.Flee())
}

func (h *Handler) postAcknowledge(c *gin.Context) {
	h.respond(c, h.session.Acknowledge())
}

type swapRequest struct {
	UIDA string `json:"uid_a" binding:"required"`
	UIDB string `json:"uid_b" binding:"required"`
}

func (h *Handler) postPartySwap(c *gin.Context) {
	var req swapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	h.respond(c, h.session.SwapSlots(req.UIDA, req.UIDB))
}

func (h *Handler) postPartyHeal(c *gin.Context) {
	h.respond(c, h.session.HealParty())
}

func (h *Handler) postBoxDeposit(c *gin.Context) {
	var req creatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	h.respond(c, h.session.Deposit(req.UID))
}

func (h *Handler) postBoxWithdraw(c *gin.Context) {
	var req creatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	h.respond(c, h.session.Withdraw(req.UID))
}

func (h *Handler) postBoxRelease(c *gin.Context) {
	var req creatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	h.respond(c, h.session.Release(req.UID))
}

func (h *Handler) postStarter(c *gin.Context) {
	h.respond(c, h.session.GrantStarter())
}

func (h *Handler) postTrade(c *gin.Context) {
	var req creatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	h.respond(c, h.session.Trade(req.UID))
}

type natureRequest struct {
	UID    string `json:"uid" binding:"required"`
	Nature string `json:"nature" binding:"required"`
}

func (h *Handler) postNature(c *gin.Context) {
	var req natureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	h.respond(c, h.session.ChangeNature(req.UID, req.Nature))
}

type itemRequest struct {
	UID  string `json:"uid"`
	Item string `json:"item" binding:"required"`
}

func (h *Handler) postItemUse(c *gin.Context) {
	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	h.respond(c, h.session.UseItem(req.UID, req.Item))
}

func (h *Handler) postItemEquip(c *gin.Context) {
	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	h.respond(c, h.session.Equip(req.UID, req.Item))
}

func (h *Handler) postItemUnequip(c *gin.Context) {
	var req creatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	h.respond(c, h.session.Unequip(req.UID))
}

type shopRequest struct {
	Item     string `json:"item" binding:"required"`
	Quantity int    `json:"quantity"`
}

func (h *Handler) postShopBuy(c *gin.Context) {
	var req shopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	h.respond(c, h.session.Buy(req.Item, req.Quantity))
}

func (h *Handler) postShopSell(c *gin.Context) {
	var req shopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	h.respond(c, h.session.Sell(req.Item, req.Quantity))
}

func (h *Handler) getEvolution(c *gin.Context) {
	view := h.session.Snapshot()
	if view.Evolution == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, view.Evolution)
}

func (h *Handler) postEvolutionConfirm(c *gin.Context) {
	h.respond(c, h.session.ConfirmEvolution())
}

func (h *Handler) postEvolutionDecline(c *gin.Context) {
	h.respond(c, h.session.DeclineEvolution())
}

// respond maps service errors to HTTP statuses and returns the fresh
// state snapshot on success so clients never need a follow-up read.
func (h *Handler) respond(c *gin.Context, err error) {
	if err == nil {
		c.JSON(http.StatusOK, h.session.Snapshot())
		return
	}
	status := http.StatusConflict
	msg := err.Error()
	switch {
	case errors.Is(err, service.ErrCreatureNotFound),
		errors.Is(err, service.ErrGymNotFound),
		errors.Is(err, service.ErrNoPendingEvolution):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrUnknownMove):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{constants.JSONKeyError: msg})
}
