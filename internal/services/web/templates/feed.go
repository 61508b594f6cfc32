package templates

import (
	"strconv"

	"github.com/a-h/templ"
	"github.com/golear/golear/internal/services/web/routepath"
)

// PostCard is one feed entry.
type PostCard struct {
	ID           int64
	Titulo       string
	Conteudo     string
	CreatedAt    string
	MediaURL     string
	IsVideo      bool
	AuthorName   string
	AuthorRole   string
	AuthorAvatar string
	Likes        int
	Liked        bool
	CommentCount int
	CanDelete    bool
	LikeURL      string
	DeleteURL    string
	CommentsURL  string
}

// PostForm holds the new post form values.
type PostForm struct {
	Titulo   string
	Conteudo string
}

// NewsCard is one headline of the news sidebar.
type NewsCard struct {
	Title       string
	Subtitle    string
	URL         string
	Image       string
	Source      string
	PublishedAt string
}

// FeedView is the feed page.
type FeedView struct {
	Posts      []PostCard
	News       []NewsCard
	Form       PostForm
	FormErrors map[string]string
	Error      string
}

// CommentItem is one reply under a post.
type CommentItem struct {
	ID           int64
	Texto        string
	CreatedAt    string
	AuthorName   string
	AuthorAvatar string
	CanDelete    bool
	DeleteURL    string
}

// CommentsView is the comment thread of one post.
type CommentsView struct {
	PostID   int64
	Comments []CommentItem
	AddURL   string
	Draft    string
	Error    string
}

// FeedFragment renders the composer, the post list and the news sidebar.
func FeedFragment(view FeedView, loc Localizer) templ.Component {
	return component(func(m *markup) {
		m.raw(`<div id="feed" class="feed-layout"><section class="feed-column">`)
		m.raw(`<form id="post-form" class="card form" method="post" enctype="multipart/form-data"`)
		m.attr("action", routepath.AppFeedPosts)
		m.raw(">")
		writeFormError(m, view.Error)
		m.input(field{Name: "titulo", Label: T(loc, "web.feed.field_title"), Value: view.Form.Titulo, Required: true, Error: view.FormErrors["titulo"]})
		m.input(field{Name: "conteudo", Type: "textarea", Label: T(loc, "web.feed.field_content"), Value: view.Form.Conteudo, Required: true, Placeholder: T(loc, "web.feed.placeholder_content"), Error: view.FormErrors["conteudo"]})
		m.input(field{Name: "image", Type: "file", Label: T(loc, "web.feed.field_media"), Extra: "image/*,video/*", Error: view.FormErrors["image"]})
		writeSubmit(m, T(loc, "web.feed.action_publish"))
		m.raw("</form>")
		if len(view.Posts) == 0 {
			m.elem("p", "empty-state", T(loc, "web.feed.empty"))
		}
		m.raw(`<ul class="posts">`)
		for _, post := range view.Posts {
			m.raw("<li>")
			m.component(PostCardFragment(post, loc))
			m.raw("</li>")
		}
		m.raw("</ul></section>")
		m.component(NewsSidebar(view.News, loc))
		m.raw("</div>")
	})
}

// PostCardFragment renders one post. Like responses swap it in place.
func PostCardFragment(post PostCard, loc Localizer) templ.Component {
	return component(func(m *markup) {
		id := "post-" + formatID(post.ID)
		m.raw(`<article class="card post"`)
		m.attr("id", id)
		m.raw(`><header class="post-author"><img`)
		m.url("src", post.AuthorAvatar)
		m.attr("alt", post.AuthorName)
		m.raw(` width="40" height="40"><div>`)
		m.elem("strong", "", post.AuthorName)
		if post.AuthorRole != "" {
			m.elem("span", "badge", post.AuthorRole)
		}
		m.elem("time", "meta", post.CreatedAt)
		m.raw("</div></header>")
		m.elem("h3", "", post.Titulo)
		m.elem("p", "post-content", post.Conteudo)
		if post.MediaURL != "" {
			if post.IsVideo {
				m.raw(`<video controls preload="metadata"`)
				m.url("src", post.MediaURL)
				m.raw("></video>")
			} else {
				m.raw(`<img class="post-media" loading="lazy"`)
				m.url("src", post.MediaURL)
				m.attr("alt", post.Titulo)
				m.raw(">")
			}
		}
		m.raw(`<footer class="post-actions"><form method="post" class="inline-form"`)
		m.attr("action", post.LikeURL)
		m.attr("hx-post", post.LikeURL)
		m.attr("hx-target", "#"+id)
		m.raw(` hx-swap="outerHTML"><button type="submit"`)
		m.classes("link-button", likedClass(post.Liked))
		m.attr("aria-pressed", strconv.FormatBool(post.Liked))
		m.raw(">")
		m.text(T(loc, "web.feed.action_like", post.Likes))
		m.raw("</button></form><a")
		m.attr("href", post.CommentsURL)
		m.attr("hx-get", post.CommentsURL)
		m.attr("hx-target", "#comments-"+formatID(post.ID))
		m.raw(` hx-swap="innerHTML">`)
		m.text(T(loc, "web.feed.action_comments", post.CommentCount))
		m.raw("</a>")
		if post.CanDelete {
			writePostButton(m, post.DeleteURL, T(loc, "web.feed.action_delete"), "link-button danger")
		}
		m.raw(`</footer><div class="comments"`)
		m.attr("id", "comments-"+formatID(post.ID))
		m.raw("></div></article>")
	})
}

func likedClass(liked bool) string {
	if liked {
		return "liked"
	}
	return ""
}

// CommentsFragment renders a post's comment thread and reply form.
func CommentsFragment(view CommentsView, loc Localizer) templ.Component {
	return component(func(m *markup) {
		target := "#comments-" + formatID(view.PostID)
		m.raw(`<div class="comment-thread"`)
		m.attr("data-post-id", formatID(view.PostID))
		m.raw(">")
		if len(view.Comments) == 0 {
			m.elem("p", "empty-state", T(loc, "web.feed.comments_empty"))
		}
		m.raw("<ul>")
		for _, comment := range view.Comments {
			m.raw(`<li class="comment"><img`)
			m.url("src", comment.AuthorAvatar)
			m.attr("alt", comment.AuthorName)
			m.raw(` width="28" height="28"><div>`)
			m.elem("strong", "", comment.AuthorName)
			m.elem("time", "meta", comment.CreatedAt)
			m.elem("p", "", comment.Texto)
			m.raw("</div>")
			if comment.CanDelete {
				m.raw(`<form method="post" class="inline-form"`)
				m.attr("action", comment.DeleteURL)
				m.attr("hx-post", comment.DeleteURL)
				m.attr("hx-target", target)
				m.raw(` hx-swap="innerHTML"><button type="submit" class="link-button danger">`)
				m.text(T(loc, "web.feed.action_delete"))
				m.raw("</button></form>")
			}
			m.raw("</li>")
		}
		m.raw(`</ul><form class="form comment-form" method="post"`)
		m.attr("action", view.AddURL)
		m.attr("hx-post", view.AddURL)
		m.attr("hx-target", target)
		m.raw(` hx-swap="innerHTML">`)
		writeFormError(m, view.Error)
		m.input(field{Name: "texto", Label: T(loc, "web.feed.field_comment"), Value: view.Draft, Required: true})
		writeSubmit(m, T(loc, "web.feed.action_comment"))
		m.raw("</form></div>")
	})
}

// NewsSidebar renders the cached football headlines.
func NewsSidebar(items []NewsCard, loc Localizer) templ.Component {
	return component(func(m *markup) {
		m.raw(`<aside id="news" class="news-column">`)
		m.elem("h2", "", T(loc, "web.feed.news_title"))
		if len(items) == 0 {
			m.elem("p", "empty-state", T(loc, "web.feed.news_empty"))
		}
		m.raw("<ul>")
		for _, item := range items {
			m.raw(`<li class="news-item"><a target="_blank" rel="noopener noreferrer" hx-boost="false"`)
			m.url("href", item.URL)
			m.raw(">")
			if item.Image != "" {
				m.raw(`<img loading="lazy" alt=""`)
				m.url("src", item.Image)
				m.raw(">")
			}
			m.elem("strong", "", item.Title)
			m.raw("</a>")
			if item.Subtitle != "" {
				m.elem("p", "", item.Subtitle)
			}
			if item.Source != "" || item.PublishedAt != "" {
				m.raw(`<p class="meta">`)
				m.text(item.Source)
				if item.Source != "" && item.PublishedAt != "" {
					m.text(" · ")
				}
				m.text(item.PublishedAt)
				m.raw("</p>")
			}
			m.raw("</li>")
		}
		m.raw("</ul></aside>")
	})
}
