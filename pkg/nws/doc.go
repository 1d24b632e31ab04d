// Package nws is a client for the UW Notification Web Service
// (/notification/v1).
//
// Resources and the calls that reach them:
//
//	GET    /endpoint/{id}                 GetEndpointByID
//	GET    /endpoint?...                  GetEndpointBy*, GetEndpointsBySubscriberID
//	POST   /endpoint                      CreateEndpoint (201)
//	PUT    /endpoint/{id}                 UpdateEndpoint (204)
//	DELETE /endpoint/{id}                 DeleteEndpoint (204)
//	POST   /endpoint/{id}/verification    ResendSMSEndpointVerification (202)
//	GET    /subscription?...              SearchSubscriptions and wrappers
//	POST   /subscription                  CreateSubscription (201)
//	DELETE /subscription/{id}             DeleteSubscription (204)
//	GET    /channel/{id}, /channel?...    GetChannelByID, SearchChannels
//	GET    /person/{id}                   GetPersonByRegID, GetPersonBySurrogateID
//	POST   /person                        CreatePerson (201)
//	PUT    /person/{regid}                UpdatePerson (204)
//	POST   /dispatch                      CreateDispatch (200)
//	DELETE /dispatch/{id}                 DeleteDispatch (204)
//	GET    /message-type/{id}             GetMessageTypeByID
//	PUT    /message-type/{id}             UpdateMessageType (204)
//	DELETE /message-type/{id}             DeleteMessageType (204)
//
// Identifiers are validated with package validate before any request is
// made. Any response status other than the one listed for a call is
// returned as a *DataFailureError.
package nws
