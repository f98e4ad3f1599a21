// Package binder decodes JSON request bodies into structs with the strict
// settings every handler should use: an enforced application/json content
// type, a size cap, and rejection of unknown fields and trailing data.
//
//	var req createArticleRequest
//	if err := binder.JSON(r, &req); err != nil {
//		apierr.New(ctx, apierr.CodeBadRequest, "Invalid request body").Render(w)
//		return
//	}
package binder
