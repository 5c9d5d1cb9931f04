// Package store provides DiscussionStore implementations. Finished
// discussions are held in memory only and are lost on restart.
package store
