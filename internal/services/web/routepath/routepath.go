// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strconv"
)

const (
	Root            = "/"
	Login           = "/login"
	Logout          = "/logout"
	Register        = "/register"
	RecoverPassword = "/recover-password"
	Peneiras        = "/peneiras"
	Healthz         = "/healthz"
	Metrics         = "/metrics"
	StaticPrefix    = "/static/"

	AppPrefix = "/app/"

	AppFeed                  = "/app/feed"
	FeedPrefix               = "/app/feed/"
	AppFeedPosts             = FeedPrefix + "posts"
	AppFeedNews              = FeedPrefix + "news"
	AppPostLikePattern       = FeedPrefix + "posts/{postID}/like"
	AppPostDeletePattern     = FeedPrefix + "posts/{postID}/delete"
	AppPostCommentsPattern   = FeedPrefix + "posts/{postID}/comments"
	AppCommentDeletePattern  = FeedPrefix + "posts/{postID}/comments/{commentID}/delete"
	AppPeneiras              = "/app/peneiras"
	PeneirasPrefix           = "/app/peneiras/"
	AppPeneirasCreate        = PeneirasPrefix + "create"
	AppPeneiraEnrollPattern  = PeneirasPrefix + "{peneiraID}/enroll"
	AppPeneiraLeavePattern   = PeneirasPrefix + "{peneiraID}/unenroll"
	AppCompeticoes           = "/app/competicoes"
	CompeticoesPrefix        = "/app/competicoes/"
	AppCompeticoesCreate     = CompeticoesPrefix + "create"
	AppProfile               = "/app/profile"
	ProfilePrefix            = "/app/profile/"
	AppProfileEdit           = ProfilePrefix + "edit"
	AppProfileStats          = ProfilePrefix + "stats"
	AppProfilePicture        = ProfilePrefix + "picture"
	AppUsers                 = "/app/users"
	UsersPrefix              = "/app/users/"
	AppUserPattern           = UsersPrefix + "{userID}"
	AppUserConnectPattern    = UsersPrefix + "{userID}/connect"
	AppUserDisconnectPattern = UsersPrefix + "{userID}/disconnect"
	AppSearch                = "/app/search"
	SearchPrefix             = "/app/search/"
	AppPlans                 = "/app/plans"
	PlansPrefix              = "/app/plans/"
	AppPlanPattern           = PlansPrefix + "{planID}"
	AppPlanCheckoutPattern   = PlansPrefix + "{planID}/checkout"
)

// AppPostLike returns the like toggle route of a post.
func AppPostLike(postID int64) string {
	return FeedPrefix + "posts/" + id(postID) + "/like"
}

// AppPostDelete returns the delete route of a post.
func AppPostDelete(postID int64) string {
	return FeedPrefix + "posts/" + id(postID) + "/delete"
}

// AppPostComments returns the comments route of a post.
func AppPostComments(postID int64) string {
	return FeedPrefix + "posts/" + id(postID) + "/comments"
}

// AppCommentDelete returns the delete route of one comment.
func AppCommentDelete(postID, commentID int64) string {
	return AppPostComments(postID) + "/" + id(commentID) + "/delete"
}

// AppPeneiraEnroll returns the enrollment route of a peneira.
func AppPeneiraEnroll(peneiraID int64) string {
	return PeneirasPrefix + id(peneiraID) + "/enroll"
}

// AppPeneiraLeave returns the unenroll route of a peneira.
func AppPeneiraLeave(peneiraID int64) string {
	return PeneirasPrefix + id(peneiraID) + "/unenroll"
}

// AppUser returns the profile route of another user.
func AppUser(userID int64) string {
	return UsersPrefix + id(userID)
}

// AppUserConnect returns the follow route of a user.
func AppUserConnect(userID int64) string {
	return AppUser(userID) + "/connect"
}

// AppUserDisconnect returns the unfollow route of a user.
func AppUserDisconnect(userID int64) string {
	return AppUser(userID) + "/disconnect"
}

// AppPlan returns the payment step of a plan.
func AppPlan(planID string) string {
	return PlansPrefix + url.PathEscape(planID)
}

// AppPlanCheckout returns the checkout submit route of a plan.
func AppPlanCheckout(planID string) string {
	return AppPlan(planID) + "/checkout"
}

// AppSearchWithQuery returns the search route with encoded filters.
func AppSearchWithQuery(values url.Values) string {
	if len(values) == 0 {
		return AppSearch
	}
	return AppSearch + "?" + values.Encode()
}

// LoginWithNext returns the login route that returns to next afterwards.
func LoginWithNext(next string) string {
	if next == "" || next == Root {
		return Login
	}
	return Login + "?" + url.Values{"next": {next}}.Encode()
}

// ParseID parses a positive numeric path id.
func ParseID(raw string) (int64, bool) {
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		return 0, false
	}
	return value, true
}

func id(value int64) string {
	return strconv.FormatInt(value, 10)
}
