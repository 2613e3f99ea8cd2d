// Package handler exposes typed HTTP handlers whose parameters are bound by
// parambind.
//
// A request type R groups one struct per request location, selected with the
// `in` tag. Wrap declares a params.Model for every tagged field when the route
// is registered and resolves them in field order on each request:
//
//	type createComment struct {
//	    Path struct {
//	        ArticleID uuid.UUID `json:"article_id"`
//	    } `in:"path"`
//	    Body struct {
//	        Text string   `json:"text" param:"required"`
//	        Tags []string `json:"tags"`
//	    } `in:"body"`
//	}
//
//	r := chi.NewRouter()
//	r.Post("/articles/{article_id}/comments", handler.Wrap(api,
//	    func(ctx handler.Context, req createComment) handler.Response {
//	        return handler.JSON(req.Body, handler.WithJSONStatus(http.StatusCreated))
//	    },
//	))
//
// Path parameters come from chi's route context by default; WithPathParams
// plugs in another router.
//
// # Errors
//
// Binding stops at the first failing model. The default error handler, built
// by NewErrorHandler over the API's logger, renders:
//
//   - validator.ValidationErrors as 422 with a detail list of loc, msg and type
//   - core.HTTPError (malformed body, body too large) with its own status
//   - anything else as 500
package handler
