// Package core has the snapshot cache, set algebra and ranking pipeline.
package core
