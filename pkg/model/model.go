// Package model defines the data types shared by the GameSquad client:
// sessions, games, rooms, and credential validation.
package model
