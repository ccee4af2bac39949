// Package object holds the domain entities referenced by gateway events:
// users, members, messages, guilds, roles and channels.
//
// Events do not own these entities. An event that "is" a message embeds a
// *Message shared with whatever cache layer the application runs; the entity
// outlives the event. The structs here carry the attribute subset the event
// layer needs; anything else remains reachable through the event's raw
// payload.
package object
