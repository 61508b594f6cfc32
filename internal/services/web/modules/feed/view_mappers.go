package feed

import (
	"strconv"
	"strings"

	"github.com/golear/golear/internal/services/golearapi"
	"github.com/golear/golear/internal/services/web/news"
	webi18n "github.com/golear/golear/internal/services/web/platform/i18n"
	"github.com/golear/golear/internal/services/web/routepath"
	webtemplates "github.com/golear/golear/internal/services/web/templates"
)

func postCards(posts []golearapi.Post, userID, lang string, loc webtemplates.Localizer) []webtemplates.PostCard {
	cards := make([]webtemplates.PostCard, 0, len(posts))
	for _, post := range posts {
		cards = append(cards, postCard(post, userID, lang, loc))
	}
	return cards
}

func postCard(post golearapi.Post, userID, lang string, loc webtemplates.Localizer) webtemplates.PostCard {
	card := webtemplates.PostCard{
		ID:           post.ID,
		Titulo:       post.Titulo,
		Conteudo:     post.Conteudo,
		CreatedAt:    webi18n.FormatDate(post.CreatedAt, lang),
		MediaURL:     post.ImageURL,
		IsVideo:      strings.EqualFold(post.MediaType, "video"),
		AuthorName:   webtemplates.T(loc, "web.feed.unknown_author"),
		AuthorAvatar: golearapi.DefaultAvatarURL,
		Likes:        post.Likes,
		Liked:        post.LikedByCurrentUser,
		CommentCount: post.CommentCount(),
		CanDelete:    ownedBy(post.UsuarioID, userID),
		LikeURL:      routepath.AppPostLike(post.ID),
		DeleteURL:    routepath.AppPostDelete(post.ID),
		CommentsURL:  routepath.AppPostComments(post.ID),
	}
	if author := post.Author; author != nil {
		if name := strings.TrimSpace(author.Name); name != "" {
			card.AuthorName = name
		}
		card.AuthorRole = string(author.Role)
		if strings.TrimSpace(author.ProfilePictureURL) != "" {
			card.AuthorAvatar = author.ProfilePictureURL
		}
	}
	return card
}

func commentItems(comments []golearapi.Comment, postID int64, userID, lang string, loc webtemplates.Localizer) []webtemplates.CommentItem {
	items := make([]webtemplates.CommentItem, 0, len(comments))
	for _, comment := range comments {
		item := webtemplates.CommentItem{
			ID:           comment.ID,
			Texto:        comment.Texto,
			CreatedAt:    webi18n.FormatDate(comment.CreatedAt, lang),
			AuthorName:   strings.TrimSpace(comment.Autor.Nome),
			AuthorAvatar: comment.Autor.ProfilePictureURL,
			CanDelete:    ownedBy(comment.Autor.ID, userID),
			DeleteURL:    routepath.AppCommentDelete(postID, comment.ID),
		}
		if item.AuthorName == "" {
			item.AuthorName = webtemplates.T(loc, "web.feed.unknown_author")
		}
		if strings.TrimSpace(item.AuthorAvatar) == "" {
			item.AuthorAvatar = golearapi.DefaultAvatarURL
		}
		items = append(items, item)
	}
	return items
}

func newsCards(items []news.Item, lang string) []webtemplates.NewsCard {
	cards := make([]webtemplates.NewsCard, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item.Title) == "" || strings.TrimSpace(item.URL) == "" {
			continue
		}
		cards = append(cards, webtemplates.NewsCard{
			Title:       item.Title,
			Subtitle:    item.Subtitle,
			URL:         item.URL,
			Image:       item.Image,
			Source:      item.Source,
			PublishedAt: webi18n.FormatDate(item.PublishedAt, lang),
		})
	}
	return cards
}

func ownedBy(ownerID int64, userID string) bool {
	return ownerID > 0 && strconv.FormatInt(ownerID, 10) == strings.TrimSpace(userID)
}
