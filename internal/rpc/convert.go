package rpc

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/dmitrijs2005/gopassport/internal/geo"
	"github.com/dmitrijs2005/gopassport/internal/passport"
	pb "github.com/dmitrijs2005/gopassport/internal/proto"
)

func toTimestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func fromTimestamp(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

// CheckInRequest builds the wire request for a. UserID is not sent; the
// server takes it from the access token. A zero CapturedAt stays unset.
func CheckInRequest(a passport.Attempt) *pb.CheckInRequest {
	return &pb.CheckInRequest{
		CheckpointId: a.CheckpointID,
		Latitude:     a.Position.Lat,
		Longitude:    a.Position.Lng,
		AccuracyM:    a.Position.AccuracyM,
		PartnerCode:  a.PartnerCode,
		PhotoRef:     a.PhotoRef,
		CapturedAt:   toTimestamp(a.CapturedAt),
	}
}

// Attempt is the inverse of CheckInRequest for an authenticated user.
func Attempt(userID string, req *pb.CheckInRequest) passport.Attempt {
	return passport.Attempt{
		UserID:       userID,
		CheckpointID: req.GetCheckpointId(),
		Position: geo.Position{
			Point:     geo.Point{Lat: req.GetLatitude(), Lng: req.GetLongitude()},
			AccuracyM: req.AccuracyM,
		},
		PartnerCode: req.GetPartnerCode(),
		PhotoRef:    req.GetPhotoRef(),
		CapturedAt:  fromTimestamp(req.GetCapturedAt()),
	}
}

// CheckInResponse reports an accepted verdict.
func CheckInResponse(v *passport.Verdict) *pb.CheckInResponse {
	return &pb.CheckInResponse{
		Success:              true,
		Stamp:                StampToProto(v.Stamp),
		RouteId:              v.Progress.RouteID,
		CompletionPercentage: int32(v.Progress.CompletionPercentage),
		RouteCompleted:       v.RouteCompleted,
		Rewards:              RewardsToProto(v.Rewards),
	}
}

// Rejection reports a refused check-in in band.
func Rejection(ce *passport.CheckinError) *pb.CheckInResponse {
	return &pb.CheckInResponse{ErrorCode: string(ce.Kind), ErrorDetail: ce.Detail}
}

// Verdict reads an accepted CheckInResponse. The response carries only the
// route id and completion percentage of the progress.
func Verdict(resp *pb.CheckInResponse) *passport.Verdict {
	return &passport.Verdict{
		Stamp: StampFromProto(resp.GetStamp()),
		Progress: passport.Progress{
			RouteID:              resp.GetRouteId(),
			CompletionPercentage: int(resp.GetCompletionPercentage()),
		},
		RouteCompleted: resp.GetRouteCompleted(),
		Rewards:        RewardsFromProto(resp.GetRewards()),
	}
}

func StampToProto(s *passport.Stamp) *pb.Stamp {
	if s == nil {
		return nil
	}
	return &pb.Stamp{
		Id:           s.ID,
		UserId:       s.UserID,
		CheckpointId: s.CheckpointID,
		RouteId:      s.RouteID,
		Position: &pb.Position{
			Lat:       s.Position.Lat,
			Lng:       s.Position.Lng,
			AccuracyM: s.Position.AccuracyM,
		},
		PhotoRef:   s.PhotoRef,
		Points:     int32(s.Points),
		CreatedAt:  toTimestamp(s.CreatedAt),
		RecordedAt: toTimestamp(s.RecordedAt),
	}
}

func StampFromProto(s *pb.Stamp) *passport.Stamp {
	if s == nil {
		return nil
	}
	pos := s.GetPosition()
	var acc *float64
	if pos != nil {
		acc = pos.AccuracyM
	}
	return &passport.Stamp{
		ID:           s.GetId(),
		UserID:       s.GetUserId(),
		CheckpointID: s.GetCheckpointId(),
		RouteID:      s.GetRouteId(),
		Position: geo.Position{
			Point:     geo.Point{Lat: pos.GetLat(), Lng: pos.GetLng()},
			AccuracyM: acc,
		},
		PhotoRef:   s.GetPhotoRef(),
		Points:     int(s.GetPoints()),
		CreatedAt:  fromTimestamp(s.GetCreatedAt()),
		RecordedAt: fromTimestamp(s.GetRecordedAt()),
	}
}

func RewardsToProto(rs []passport.Reward) []*pb.Reward {
	if len(rs) == 0 {
		return nil
	}
	out := make([]*pb.Reward, 0, len(rs))
	for _, r := range rs {
		out = append(out, &pb.Reward{Id: r.ID, RouteId: r.RouteID, Title: r.Title, Description: r.Description})
	}
	return out
}

func RewardsFromProto(rs []*pb.Reward) []passport.Reward {
	if len(rs) == 0 {
		return nil
	}
	out := make([]passport.Reward, 0, len(rs))
	for _, r := range rs {
		out = append(out, passport.Reward{ID: r.GetId(), RouteID: r.GetRouteId(), Title: r.GetTitle(), Description: r.GetDescription()})
	}
	return out
}

func ProgressToProto(p *passport.Progress) *pb.Progress {
	out := &pb.Progress{
		RouteId:              p.RouteID,
		TotalFragments:       int32(p.TotalFragments),
		CollectedFragments:   int32(p.CollectedFragments),
		CompletionPercentage: int32(p.CompletionPercentage),
	}
	for _, f := range p.Fragments {
		fp := &pb.FragmentProgress{
			CheckpointId:  f.CheckpointID,
			FragmentIndex: int32(f.FragmentIndex),
			Collected:     f.Collected,
		}
		if f.CollectedAt != nil {
			fp.CollectedAt = toTimestamp(*f.CollectedAt)
		}
		out.Fragments = append(out.Fragments, fp)
	}
	return out
}

func ProgressFromProto(p *pb.Progress) *passport.Progress {
	out := &passport.Progress{
		RouteID:              p.GetRouteId(),
		TotalFragments:       int(p.GetTotalFragments()),
		CollectedFragments:   int(p.GetCollectedFragments()),
		CompletionPercentage: int(p.GetCompletionPercentage()),
	}
	for _, f := range p.GetFragments() {
		fp := passport.FragmentProgress{
			CheckpointID:  f.GetCheckpointId(),
			FragmentIndex: int(f.GetFragmentIndex()),
			Collected:     f.GetCollected(),
		}
		if f.GetCollectedAt() != nil {
			at := f.GetCollectedAt().AsTime()
			fp.CollectedAt = &at
		}
		out.Fragments = append(out.Fragments, fp)
	}
	return out
}

func ViewToProto(v *passport.View) *pb.PassportResponse {
	resp := &pb.PassportResponse{
		Passport: &pb.Passport{
			Id:              v.Passport.ID,
			UserId:          v.Passport.UserID,
			Number:          v.Passport.Number,
			TotalStamps:     int32(v.Passport.TotalStamps),
			CompletedRoutes: int32(v.Passport.CompletedRoutes),
			TotalPoints:     int32(v.Passport.TotalPoints),
			CreatedAt:       toTimestamp(v.Passport.CreatedAt),
		},
	}
	for i := range v.Stamps {
		resp.Stamps = append(resp.Stamps, StampToProto(&v.Stamps[i]))
	}
	for _, g := range v.Grants {
		resp.Grants = append(resp.Grants, &pb.Grant{
			UserId:    g.UserID,
			RouteId:   g.RouteID,
			RewardId:  g.RewardID,
			GrantedAt: toTimestamp(g.GrantedAt),
		})
	}
	return resp
}

func ViewFromProto(resp *pb.PassportResponse) *passport.View {
	p := resp.GetPassport()
	v := &passport.View{
		Passport: passport.Passport{
			ID:              p.GetId(),
			UserID:          p.GetUserId(),
			Number:          p.GetNumber(),
			TotalStamps:     int(p.GetTotalStamps()),
			CompletedRoutes: int(p.GetCompletedRoutes()),
			TotalPoints:     int(p.GetTotalPoints()),
			CreatedAt:       fromTimestamp(p.GetCreatedAt()),
		},
	}
	for _, s := range resp.GetStamps() {
		v.Stamps = append(v.Stamps, *StampFromProto(s))
	}
	for _, g := range resp.GetGrants() {
		v.Grants = append(v.Grants, passport.Grant{
			UserID:    g.GetUserId(),
			RouteID:   g.GetRouteId(),
			RewardID:  g.GetRewardId(),
			GrantedAt: fromTimestamp(g.GetGrantedAt()),
		})
	}
	return v
}
