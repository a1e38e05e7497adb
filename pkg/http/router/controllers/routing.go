package controllers

import (
	"errors"
	"net/http"
	"strconv"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/julienschmidt/httprouter"
	"github.com/lintang-b-s/Flightx/pkg"
	helper "github.com/lintang-b-s/Flightx/pkg/http/router/routerhelper"
	"github.com/lintang-b-s/Flightx/pkg/util"
	"go.uber.org/zap"
)

type routingAPI struct {
	routingService RoutingService
	log            *zap.Logger
	validator      *validator.Validate
	trans          ut.Translator
}

func New(routingService RoutingService, log *zap.Logger) *routingAPI {
	validate, trans := newValidator()
	return &routingAPI{
		routingService: routingService,
		log:            log,
		validator:      validate,
		trans:          trans,
	}
}

func (api *routingAPI) Routes(group *helper.RouteGroup) {
	group.GET("/airport/:code", api.airport)
	group.GET("/farthest/:code", api.farthest)
	group.GET("/shortest-path", api.shortestPath)
	group.GET("/graph-analysis", api.graphAnalysis)
	group.GET("/airports/nearby", api.nearbyAirports)
	group.POST("/graph/reload", api.reloadGraph)
}

// airport
//
//	@Summary		airport details by code
//	@Tags			airports
//	@Produce		application/json
//	@Param			code	path		string	true	"airport code"
//	@Success		200		{object}	airportResponse
//	@Failure		404		{object}	errorResponse
//	@Router			/airport/{code} [get]
func (api *routingAPI) airport(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	request := airportRequest{Code: util.NormalizeCode(p.ByName("code"))}
	if err := api.validate(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	airport, err := api.routingService.GetAirport(request.Code)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewAirportResponse(airport)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// farthest
//
//	@Summary		k airports with the longest shortest path from code
//	@Tags			routes
//	@Produce		application/json
//	@Param			code	path		string	true	"airport code"
//	@Param			k		query		int		false	"number of airports (default 10)"
//	@Success		200		{object}	farthestResponse
//	@Failure		400		{object}	errorResponse
//	@Failure		404		{object}	errorResponse
//	@Router			/farthest/{code} [get]
func (api *routingAPI) farthest(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var err error
	request := farthestRequest{
		Code: util.NormalizeCode(p.ByName("code")),
		K:    pkg.DEFAULT_FARTHEST_K,
	}

	if k := r.URL.Query().Get("k"); k != "" {
		request.K, err = strconv.Atoi(k)
		if err != nil {
			api.BadRequestResponse(w, r, errors.New("k must be a valid int"))
			return
		}
	}
	if err := api.validate(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	farthest, err := api.routingService.FarthestAirports(r.Context(), request.Code, request.K)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewFarthestResponse(request.Code, farthest)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// shortestPath
//
//	@Summary		shortest route between two airports
//	@Tags			routes
//	@Produce		application/json
//	@Param			origin		query		string	true	"origin airport code"
//	@Param			destination	query		string	true	"destination airport code"
//	@Success		200			{object}	shortestPathResponse
//	@Failure		400			{object}	errorResponse
//	@Failure		404			{object}	errorResponse
//	@Router			/shortest-path [get]
func (api *routingAPI) shortestPath(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	query := r.URL.Query()
	request := shortestPathRequest{
		Origin:      util.NormalizeCode(query.Get("origin")),
		Destination: util.NormalizeCode(query.Get("destination")),
	}
	if err := api.validate(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	route, err := api.routingService.ShortestPath(r.Context(), request.Origin, request.Destination)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewShortestPathResponse(route)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// graphAnalysis
//
//	@Summary		connectivity and minimum spanning tree of every component
//	@Tags			graph
//	@Produce		application/json
//	@Success		200	{object}	graphAnalysisResponse
//	@Router			/graph-analysis [get]
func (api *routingAPI) graphAnalysis(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	analysis, err := api.routingService.GraphAnalysis(r.Context())
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewGraphAnalysisResponse(analysis)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// nearbyAirports
//
//	@Summary		airports within radius km of a point, nearest first
//	@Tags			airports
//	@Produce		application/json
//	@Param			lat		query		number	true	"latitude"
//	@Param			lon		query		number	true	"longitude"
//	@Param			radius	query		number	true	"radius in km"
//	@Success		200		{object}	nearbyResponse
//	@Failure		400		{object}	errorResponse
//	@Router			/airports/nearby [get]
func (api *routingAPI) nearbyAirports(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request nearbyRequest
		err     error
	)

	query := r.URL.Query()

	request.Lat, err = strconv.ParseFloat(query.Get("lat"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("lat is required and must be a valid float"))
		return
	}
	request.Lon, err = strconv.ParseFloat(query.Get("lon"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("lon is required and must be a valid float"))
		return
	}
	request.Radius, err = strconv.ParseFloat(query.Get("radius"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("radius is required and must be a valid float"))
		return
	}
	if err := api.validate(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	nearby := api.routingService.NearbyAirports(request.Lat, request.Lon, request.Radius)

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewNearbyResponse(nearby)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// reloadGraph
//
//	@Summary		reload the flight routes dataset
//	@Tags			graph
//	@Produce		application/json
//	@Success		200	{object}	reloadResponse
//	@Failure		403	{object}	errorResponse
//	@Router			/graph/reload [post]
func (api *routingAPI) reloadGraph(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	res, err := api.routingService.ReloadGraph(r.Context())
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	api.log.Info("graph reloaded", zap.Int("airports", res.Airports), zap.Int("routes", res.Routes))

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewReloadResponse(res)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
