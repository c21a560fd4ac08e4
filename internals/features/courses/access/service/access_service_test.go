package service

import "testing"

func baseInput() AccessInput {
	return AccessInput{
		HasUser:          true,
		CourseAlive:      true,
		ChapterAlive:     true,
		ChapterPublished: true,
	}
}

func TestDecideChapterAccess_PurchaseUnlocksPaidChapter(t *testing.T) {
	in := baseInput()
	in.HasPurchase = true

	res := DecideChapterAccess(in)
	if !res.Viewable {
		t.Fatalf("purchase seharusnya membuka chapter berbayar: %+v", res)
	}
	if !res.CanViewAttachments {
		t.Fatalf("purchase seharusnya membuka attachment: %+v", res)
	}
	if res.Reason != ReasonOK {
		t.Fatalf("reason salah: %s", res.Reason)
	}
}

func TestDecideChapterAccess_PaidChapterLockedWithoutPurchase(t *testing.T) {
	res := DecideChapterAccess(baseInput())
	if res.Viewable {
		t.Fatalf("chapter berbayar tanpa purchase seharusnya terkunci: %+v", res)
	}
	if res.Reason != ReasonPurchaseRequired {
		t.Fatalf("reason salah: %s", res.Reason)
	}
}

func TestDecideChapterAccess_FreeChapterGrantsVideoNotAttachments(t *testing.T) {
	in := baseInput()
	in.ChapterIsFree = true

	res := DecideChapterAccess(in)
	if !res.Viewable {
		t.Fatalf("chapter gratis seharusnya viewable: %+v", res)
	}
	// asimetri yang disengaja: video ya, attachment tidak
	if res.CanViewAttachments {
		t.Fatalf("chapter gratis tanpa purchase tidak boleh buka attachment: %+v", res)
	}
}

func TestDecideChapterAccess_PreviewSkipsAuth(t *testing.T) {
	in := baseInput()
	in.HasUser = false
	in.IsPreview = true

	res := DecideChapterAccess(in)
	if !res.Viewable || res.Reason != ReasonPreviewOK {
		t.Fatalf("preview pada chapter published seharusnya lolos: %+v", res)
	}
	if res.CanViewAttachments {
		t.Fatalf("preview tidak boleh membuka attachment: %+v", res)
	}
}

func TestDecideChapterAccess_PreviewStillRequiresPublished(t *testing.T) {
	in := baseInput()
	in.HasUser = false
	in.IsPreview = true
	in.ChapterPublished = false

	res := DecideChapterAccess(in)
	if res.Viewable {
		t.Fatalf("preview chapter unpublished seharusnya ditolak: %+v", res)
	}
	if res.Reason != ReasonNotAvailable {
		t.Fatalf("reason salah: %s", res.Reason)
	}
}

func TestDecideChapterAccess_DeletedCourseLocksChapter(t *testing.T) {
	in := baseInput()
	in.CourseAlive = false
	in.HasPurchase = true

	res := DecideChapterAccess(in)
	if res.Viewable {
		t.Fatalf("course soft-deleted seharusnya mengunci semua chapter: %+v", res)
	}
}

func TestDecideChapterAccess_AnonymousNonPreviewNeedsLogin(t *testing.T) {
	in := baseInput()
	in.HasUser = false

	res := DecideChapterAccess(in)
	if res.Viewable || res.Reason != ReasonLoginRequired {
		t.Fatalf("anonim non-preview seharusnya diminta login: %+v", res)
	}
}

func TestDecideChapterAccess_StaffBypassesPurchase(t *testing.T) {
	in := baseInput()
	in.HasStaffCapability = true

	res := DecideChapterAccess(in)
	if !res.Viewable || !res.CanViewAttachments {
		t.Fatalf("staff seharusnya punya akses penuh: %+v", res)
	}
}
