// Package services loads the onboarding datasets.
//
// # Sources
//
// A [Source] returns one named [models.Dataset] ("topics" or "newsletters"):
//
//   - [HTTPSource] : GET <base_url>/<name>.json from a remote server
//   - [DirSource] : read <dir>/<name>.json from the local filesystem
//   - [EmbeddedSource] : the compiled-in defaults under data/
//
// Every source rejects non-success responses, malformed JSON and datasets failing [models.Dataset.Validate].
//
// # Fallback
//
// [Provider.Load] fetches both datasets in parallel and waits for both.
// Each outcome is captured as a [FetchResult] and the pair is handed to [Resolve], which makes a single decision:
// if either fetch failed, both datasets come from the embedded defaults.
// Live and fallback data are never mixed, nothing is retried, and the failure is only logged.
package services
