package cache

import (
	"context"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"
)

// MeetingCache holds serialized meeting-detail payloads. A short-lived dirty
// marker set on every artifact write keeps readers off stale entries while a
// write is in flight.
type MeetingCache struct {
	client         *redisv9.Client
	detailTTL      time.Duration
	dirtyMarkerTTL time.Duration
}

func NewMeetingCache(client *redisv9.Client, detailTTL, dirtyMarkerTTL time.Duration) *MeetingCache {
	if detailTTL <= 0 {
		detailTTL = 60 * time.Second
	}
	if dirtyMarkerTTL <= 0 {
		dirtyMarkerTTL = 5 * time.Second
	}
	return &MeetingCache{
		client:         client,
		detailTTL:      detailTTL,
		dirtyMarkerTTL: dirtyMarkerTTL,
	}
}

func (c *MeetingCache) GetDetail(ctx context.Context, meetingID string) ([]byte, bool, error) {
	raw, err := c.client.Get(ctx, c.detailKey(meetingID)).Bytes()
	if err == redisv9.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get meeting detail failed: %w", err)
	}
	return raw, true, nil
}

func (c *MeetingCache) SetDetail(ctx context.Context, meetingID string, payload []byte) error {
	if err := c.client.Set(ctx, c.detailKey(meetingID), payload, c.detailTTL).Err(); err != nil {
		return fmt.Errorf("redis set meeting detail failed: %w", err)
	}
	return nil
}

func (c *MeetingCache) DeleteDetail(ctx context.Context, meetingID string) error {
	if err := c.client.Del(ctx, c.detailKey(meetingID)).Err(); err != nil {
		return fmt.Errorf("redis delete meeting detail failed: %w", err)
	}
	return nil
}

func (c *MeetingCache) MarkDirty(ctx context.Context, meetingID string) error {
	if err := c.client.Set(ctx, c.dirtyKey(meetingID), "1", c.dirtyMarkerTTL).Err(); err != nil {
		return fmt.Errorf("redis set dirty marker failed: %w", err)
	}
	return nil
}

func (c *MeetingCache) IsDirty(ctx context.Context, meetingID string) (bool, error) {
	exists, err := c.client.Exists(ctx, c.dirtyKey(meetingID)).Result()
	if err != nil {
		return false, fmt.Errorf("redis check dirty marker failed: %w", err)
	}
	return exists > 0, nil
}

func (c *MeetingCache) detailKey(meetingID string) string {
	return fmt.Sprintf("meeting:detail:%s", meetingID)
}

func (c *MeetingCache) dirtyKey(meetingID string) string {
	return fmt.Sprintf("meeting:detail:dirty:%s", meetingID)
}
