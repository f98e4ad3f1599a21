// Package blog is the article CRUD module: a small multi-tenant content
// API that exercises the full request pipeline.
//
// Reads are public, but drafts stay hidden from callers without an
// editorial role. Writes require the editor or admin role, deletion is
// admin-only, and the aggregated reports view sits behind the beta-reports
// feature flag. Every route's policy lives in Policies, one reviewable
// map, and Router wraps each handler in the matching gate chain.
//
// Articles are scoped by the tenant resolved earlier in the pipeline;
// requests without a tenant operate on the default bucket. The bundled
// MemoryStore keeps everything in process memory, which is all the
// scaffold needs; production deployments supply their own Store.
package blog
