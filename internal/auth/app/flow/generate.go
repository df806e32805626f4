package flow

//go:generate mockgen -source=collaborators.go -destination=mock_collaborators.go -package=flow
