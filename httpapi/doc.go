// Package httpapi exposes an itinerary.Planner over HTTP with gin.
//
//	GET  /healthz            {"status":"ok"}
//	GET  /locations          {"locations":["A","B",...]}   sorted
//	POST /itineraries        {"origin":"A","destination":"C","criterion":"Cost"}
//	POST /itineraries/best   same body, single optimal path
//
// The itinerary response carries the ranked paths, or an empty list and the
// "No viable path found" message:
//
//	{"origin":"A","destination":"C","criterion":"Cost","found":true,
//	 "paths":[{"stops":["A","B","C"],"cost":150,"duration":70}],"message":""}
//
// Criterion tokens follow rank.ParseCriterion; an omitted criterion ranks by
// duration. Malformed bodies get 400 with {"error": "..."}.
package httpapi
