// Package motion holds the pure per-tick movement math shared by the player
// and NPC pipelines: intent translation, walker acceleration, the jump/fall
// state machine and the speed driven field of view curve.
package motion
