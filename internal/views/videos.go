package views

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/01imprashant/Complete-YouTube-Twitter-Backend/internal/logging"
	"github.com/01imprashant/Complete-YouTube-Twitter-Backend/internal/repositories"
)

const videoViewColumns = `
    v.id, v.file_url, v.thumbnail_url, v.title, v.description,
    v.duration, v.views, v.published, v.created_at,
    u.id, u.handle, u.display_name, u.avatar_url`

// FeedParams filters and orders the published-video feed.
type FeedParams struct {
	// Query matches titles and descriptions case-insensitively when set.
	Query string
	// OwnerID restricts the feed to one channel when set.
	OwnerID string
	// SortBy is one of createdAt, views, duration, title. Unknown values
	// fall back to createdAt.
	SortBy string
	// Ascending flips the sort direction; the default is newest first.
	Ascending bool
	Page      PageParams
}

// escapeLikePattern neutralizes LIKE metacharacters so a search term such as
// "100%" matches the literal text instead of acting as a wildcard.
var likePatternEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLikePattern(term string) string {
	return likePatternEscaper.Replace(term)
}

var feedSortColumns = map[string]string{
	"createdAt": "v.created_at",
	"views":     "v.views",
	"duration":  "v.duration",
	"title":     "v.title",
}

// VideoFeed lists published videos with their owners, filtered, sorted, and
// paginated. An empty page is a valid result, not an error.
func (a *Aggregator) VideoFeed(ctx context.Context, params FeedParams) ([]VideoView, error) {
	ctx, span := logging.StartSpan(ctx, "views.VideoFeed")
	defer span.End()

	page := params.Page.Normalize()

	conditions := []string{"v.published"}
	args := []any{}
	if params.Query != "" {
		args = append(args, "%"+escapeLikePattern(params.Query)+"%")
		placeholder := fmt.Sprintf("$%d", len(args))
		conditions = append(conditions,
			fmt.Sprintf("(v.title ILIKE %s OR v.description ILIKE %s)", placeholder, placeholder))
	}
	if params.OwnerID != "" {
		args = append(args, params.OwnerID)
		conditions = append(conditions, fmt.Sprintf("v.owner_id = $%d", len(args)))
	}

	sortColumn, ok := feedSortColumns[params.SortBy]
	if !ok {
		sortColumn = "v.created_at"
	}
	direction := "DESC"
	if params.Ascending {
		direction = "ASC"
	}

	args = append(args, page.Limit, page.Offset())
	query := fmt.Sprintf(`
        SELECT %s
        FROM videos v
        JOIN users u ON u.id = v.owner_id
        WHERE %s
        ORDER BY %s %s
        LIMIT $%d OFFSET $%d`,
		videoViewColumns, strings.Join(conditions, " AND "),
		sortColumn, direction, len(args)-1, len(args))

	return a.queryVideoViews(ctx, query, args...)
}

// VideoByID loads a single video with its owner attached.
func (a *Aggregator) VideoByID(ctx context.Context, videoID string) (VideoView, error) {
	conn, err := a.pool.Acquire(ctx)
	if err != nil {
		return VideoView{}, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	row := conn.QueryRow(ctx, `
        SELECT `+videoViewColumns+`
        FROM videos v
        JOIN users u ON u.id = v.owner_id
        WHERE v.id = $1`, videoID)

	view, err := scanVideoView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return VideoView{}, repositories.ErrNotFound
		}
		return VideoView{}, fmt.Errorf("select video view: %w", err)
	}

	return view, nil
}

// ChannelVideos lists every video owned by the channel, drafts included,
// newest first. Intended for the owner's dashboard.
func (a *Aggregator) ChannelVideos(ctx context.Context, ownerID string) ([]VideoView, error) {
	return a.queryVideoViews(ctx, `
        SELECT `+videoViewColumns+`
        FROM videos v
        JOIN users u ON u.id = v.owner_id
        WHERE v.owner_id = $1
        ORDER BY v.created_at DESC`, ownerID)
}

// WatchHistory lists the videos the user has watched, most recent first.
func (a *Aggregator) WatchHistory(ctx context.Context, userID string) ([]VideoView, error) {
	return a.queryVideoViews(ctx, `
        SELECT `+videoViewColumns+`
        FROM watch_history h
        JOIN videos v ON v.id = h.video_id
        JOIN users u ON u.id = v.owner_id
        WHERE h.user_id = $1
        ORDER BY h.watched_at DESC`, userID)
}

// LikedVideos lists the videos the user has liked, most recently liked first.
func (a *Aggregator) LikedVideos(ctx context.Context, userID string) ([]VideoView, error) {
	return a.queryVideoViews(ctx, `
        SELECT `+videoViewColumns+`
        FROM likes l
        JOIN videos v ON v.id = l.target_id
        JOIN users u ON u.id = v.owner_id
        WHERE l.user_id = $1 AND l.target_type = 'video'
        ORDER BY l.created_at DESC`, userID)
}

func (a *Aggregator) queryVideoViews(ctx context.Context, query string, args ...any) ([]VideoView, error) {
	conn, err := a.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select video views: %w", err)
	}
	defer rows.Close()

	views := []VideoView{}
	for rows.Next() {
		view, err := scanVideoView(rows)
		if err != nil {
			return nil, fmt.Errorf("scan video view: %w", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate video views: %w", err)
	}

	return views, nil
}

func scanVideoView(row pgx.Row) (VideoView, error) {
	var view VideoView
	err := row.Scan(
		&view.ID, &view.FileURL, &view.ThumbnailURL, &view.Title, &view.Description,
		&view.Duration, &view.Views, &view.Published, &view.CreatedAt,
		&view.Owner.ID, &view.Owner.Handle, &view.Owner.DisplayName, &view.Owner.AvatarURL,
	)
	if err != nil {
		return VideoView{}, err
	}
	view.CreatedAt = view.CreatedAt.UTC()
	return view, nil
}
